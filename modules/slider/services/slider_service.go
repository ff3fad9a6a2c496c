package services

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/gaunghar/admin-console/modules/slider/domain/aggregates/slider"
	"github.com/gaunghar/admin-console/pkg/composables"
)

type SliderService struct {
	repo slider.Repository
}

func NewSliderService(repo slider.Repository) *SliderService {
	return &SliderService{repo: repo}
}

// List returns the slides sorted by display order.
func (s *SliderService) List(ctx context.Context) ([]slider.Slider, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	slider.SortByOrder(list)
	return list, nil
}

func (s *SliderService) Get(ctx context.Context, id string) (slider.Slider, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return slider.Slider{}, err
	}
	return slider.Find(list, id)
}

func (s *SliderService) Create(ctx context.Context, sl slider.Slider) error {
	if sl.ImgURL == "" {
		return slider.ErrImageRequired
	}
	if sl.Status == "" {
		sl.Status = slider.StatusActive
	}
	if err := s.repo.Create(ctx, sl); err != nil {
		return err
	}
	composables.UseLogger(ctx).WithField("title", sl.Title).Info("slider created")
	return nil
}

// Update saves sl. An empty ImgURL keeps the stored image.
func (s *SliderService) Update(ctx context.Context, sl slider.Slider) error {
	if sl.ImgURL == "" || sl.Status == "" {
		current, err := s.Get(ctx, sl.ID)
		if err != nil {
			return errors.Wrap(err, "load current slider")
		}
		if sl.ImgURL == "" {
			sl.ImgURL = current.ImgURL
		}
		if sl.Status == "" {
			sl.Status = current.Status
		}
	}
	return s.repo.Update(ctx, sl)
}

func (s *SliderService) Toggle(ctx context.Context, id string) error {
	return s.repo.Toggle(ctx, id)
}

func (s *SliderService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	composables.UseLogger(ctx).WithField("slider_id", id).Info("slider removed")
	return nil
}

// Move swaps the order of id with its neighbour in dir using two updates.
// It reports false when id is already at that end of the list. When the
// second update fails the returned error wraps slider.ErrPartialReorder.
func (s *SliderService) Move(ctx context.Context, id string, dir slider.Direction) (bool, error) {
	list, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	moved, neighbour, ok, err := slider.Swap(list, id, dir)
	if err != nil || !ok {
		return false, err
	}
	if err := s.repo.Update(ctx, moved); err != nil {
		return false, err
	}
	if err := s.repo.Update(ctx, neighbour); err != nil {
		composables.UseLogger(ctx).WithError(err).WithField("slider_id", neighbour.ID).Error("slider reorder left half applied")
		return false, fmt.Errorf("%w: %w", slider.ErrPartialReorder, err)
	}
	return true, nil
}
