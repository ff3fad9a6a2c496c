package helpline

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("helpline not found")

// Status is the publish switch of a helpline entry: A shows it in the app, I hides it.
type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
)

func (s Status) Active() bool {
	return s == StatusActive
}

// Helpline is an emergency or service contact a tole publishes to residents.
type Helpline struct {
	ID          string
	ForHelp     string
	ContactName string
	Contact     string
	Status      Status
}

type Repository interface {
	GetAll(ctx context.Context) ([]Helpline, error)
	Create(ctx context.Context, h Helpline) error
	Update(ctx context.Context, h Helpline) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// Find returns the entry with id from list.
func Find(list []Helpline, id string) (Helpline, error) {
	for _, h := range list {
		if h.ID == id {
			return h, nil
		}
	}
	return Helpline{}, ErrNotFound
}
