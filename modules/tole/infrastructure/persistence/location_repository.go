package persistence

import (
	"context"

	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
	"github.com/gaunghar/admin-console/pkg/backend"
)

type LocationRepository struct {
	client *backend.Client
}

func NewLocationRepository(client *backend.Client) location.Repository {
	return &LocationRepository{client: client}
}

func (r *LocationRepository) lookup(ctx context.Context, op refLookup) ([]refRow, error) {
	id := identityFrom(ctx)
	op.ToleID, op.UserID = id.ToleID, id.UserID
	resp := &refResponse{}
	if err := r.client.Do(ctx, op, resp); err != nil {
		return nil, err
	}
	return resp.RefLst, nil
}

func (r *LocationRepository) Provinces(ctx context.Context) ([]location.Option, error) {
	rows, err := r.lookup(ctx, refLookup{flag: flagProvinces})
	if err != nil {
		return nil, err
	}
	out := make([]location.Option, 0, len(rows))
	for _, row := range rows {
		out = append(out, location.Option{ID: row.ProvinceID.String(), Name: row.Province.String()})
	}
	return out, nil
}

func (r *LocationRepository) Districts(ctx context.Context, provinceID string) ([]location.Option, error) {
	rows, err := r.lookup(ctx, refLookup{flag: flagDistricts, ProvinceID: provinceID})
	if err != nil {
		return nil, err
	}
	out := make([]location.Option, 0, len(rows))
	for _, row := range rows {
		out = append(out, location.Option{ID: row.DistrictID.String(), Name: row.District.String()})
	}
	return out, nil
}

func (r *LocationRepository) Municipalities(ctx context.Context, provinceID, districtID string) ([]location.Option, error) {
	rows, err := r.lookup(ctx, refLookup{flag: flagMunicipality, ProvinceID: provinceID, DistrictID: districtID})
	if err != nil {
		return nil, err
	}
	out := make([]location.Option, 0, len(rows))
	for _, row := range rows {
		out = append(out, location.Option{ID: row.MunicipalityID.String(), Name: row.Municipality.String()})
	}
	return out, nil
}
