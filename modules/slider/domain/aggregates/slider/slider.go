package slider

import (
	"context"
	"errors"
	"sort"
	"time"
)

var (
	ErrNotFound      = errors.New("slider not found")
	ErrImageRequired = errors.New("slider image is required")
	// ErrPartialReorder means the first of the two order updates went through
	// and the second did not; the two slides now share an order value.
	ErrPartialReorder = errors.New("slider order only partially updated")
)

type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
)

func (s Status) Active() bool {
	return s == StatusActive
}

// Slider is one slide of the app's home carousel. ImgURL holds whatever the
// backend stores: bare base64 after an upload, or a file path.
type Slider struct {
	ID          string
	Title       string
	ImgURL      string
	RedirectURL string
	Order       int
	Status      Status
	CreatedDate time.Time
	UpdatedDate time.Time
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func ParseDirection(v string) (Direction, bool) {
	switch Direction(v) {
	case Up:
		return Up, true
	case Down:
		return Down, true
	default:
		return "", false
	}
}

type Repository interface {
	GetAll(ctx context.Context) ([]Slider, error)
	Create(ctx context.Context, s Slider) error
	Update(ctx context.Context, s Slider) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// SortByOrder sorts slides by Order, keeping backend order among equals.
func SortByOrder(list []Slider) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Order < list[j].Order
	})
}

func Find(list []Slider, id string) (Slider, error) {
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return Slider{}, ErrNotFound
}

// Swap returns id and its neighbour in dir with their orders exchanged.
// sorted must be ordered by SortByOrder. ok is false at either end of the list.
// Slides sharing an order are pulled apart so the move stays visible.
func Swap(sorted []Slider, id string, dir Direction) (moved, neighbour Slider, ok bool, err error) {
	idx := -1
	for i, s := range sorted {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Slider{}, Slider{}, false, ErrNotFound
	}
	other := idx - 1
	if dir == Down {
		other = idx + 1
	}
	if other < 0 || other >= len(sorted) {
		return Slider{}, Slider{}, false, nil
	}
	moved, neighbour = sorted[idx], sorted[other]
	moved.Order, neighbour.Order = neighbour.Order, moved.Order
	if moved.Order == neighbour.Order {
		if dir == Up {
			neighbour.Order++
		} else {
			moved.Order++
		}
	}
	return moved, neighbour, true, nil
}
