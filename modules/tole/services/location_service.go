package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
)

type LocationService struct {
	repo location.Repository
}

func NewLocationService(repo location.Repository) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) Provinces(ctx context.Context) ([]location.Option, error) {
	return s.repo.Provinces(ctx)
}

func (s *LocationService) Districts(ctx context.Context, provinceID string) ([]location.Option, error) {
	if provinceID == "" {
		return nil, nil
	}
	return s.repo.Districts(ctx, provinceID)
}

func (s *LocationService) Municipalities(ctx context.Context, provinceID, districtID string) ([]location.Option, error) {
	if provinceID == "" || districtID == "" {
		return nil, nil
	}
	return s.repo.Municipalities(ctx, provinceID, districtID)
}

// Load fills the option lists the current selection needs, fetching the
// levels in parallel. Nothing is applied unless every lookup succeeds.
func (s *LocationService) Load(ctx context.Context, sel *location.Selector) error {
	var (
		provinces, districts, municipalities []location.Option
		provinceID, districtID               = sel.Province, sel.District
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		provinces, err = s.Provinces(gctx)
		return err
	})
	if sel.DistrictEnabled() {
		g.Go(func() error {
			var err error
			districts, err = s.Districts(gctx, provinceID)
			return err
		})
	}
	if sel.DistrictEnabled() && sel.MunicipalityEnabled() {
		g.Go(func() error {
			var err error
			municipalities, err = s.Municipalities(gctx, provinceID, districtID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sel.Provinces, sel.Districts, sel.Municipalities = provinces, districts, municipalities
	return nil
}
