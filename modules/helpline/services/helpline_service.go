package services

import (
	"context"

	"github.com/gaunghar/admin-console/modules/helpline/domain/aggregates/helpline"
	"github.com/gaunghar/admin-console/pkg/composables"
)

type HelplineService struct {
	repo helpline.Repository
}

func NewHelplineService(repo helpline.Repository) *HelplineService {
	return &HelplineService{repo: repo}
}

func (s *HelplineService) List(ctx context.Context) ([]helpline.Helpline, error) {
	return s.repo.GetAll(ctx)
}

// Get looks id up in the list; the backend has no single-entry read.
func (s *HelplineService) Get(ctx context.Context, id string) (helpline.Helpline, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return helpline.Helpline{}, err
	}
	return helpline.Find(all, id)
}

func (s *HelplineService) Create(ctx context.Context, h helpline.Helpline) error {
	h.Status = helpline.StatusActive
	if err := s.repo.Create(ctx, h); err != nil {
		return err
	}
	composables.UseLogger(ctx).WithField("for_help", h.ForHelp).Info("helpline created")
	return nil
}

func (s *HelplineService) Update(ctx context.Context, h helpline.Helpline) error {
	if h.Status == "" {
		h.Status = helpline.StatusActive
	}
	return s.repo.Update(ctx, h)
}

func (s *HelplineService) Toggle(ctx context.Context, id string) error {
	return s.repo.Toggle(ctx, id)
}

func (s *HelplineService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	composables.UseLogger(ctx).WithField("helpline_id", id).Info("helpline removed")
	return nil
}
