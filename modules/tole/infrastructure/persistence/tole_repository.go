package persistence

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/pkg/backend"
)

type ToleRepository struct {
	client *backend.Client
}

func NewToleRepository(client *backend.Client) tole.Repository {
	return &ToleRepository{client: client}
}

func (r *ToleRepository) GetAll(ctx context.Context) ([]tole.Tole, error) {
	resp := &toleListResponse{}
	if err := r.client.Do(ctx, listToles{identity: identityFrom(ctx)}, resp); err != nil {
		return nil, err
	}
	out := make([]tole.Tole, 0, len(resp.ToleLst))
	for _, row := range resp.ToleLst {
		out = append(out, toDomainTole(row))
	}
	return out, nil
}

func (r *ToleRepository) GetByID(ctx context.Context, id string) (tole.Tole, error) {
	resp := &toleListResponse{}
	op := toleInfo{ToleID: id, UserID: identityFrom(ctx).UserID}
	if err := r.client.Do(ctx, op, resp); err != nil {
		return tole.Tole{}, err
	}
	if len(resp.ToleLst) == 0 {
		return tole.Tole{}, errors.Wrapf(tole.ErrNotFound, "tole %s", id)
	}
	return toDomainTole(resp.ToleLst[0]), nil
}

func (r *ToleRepository) Create(ctx context.Context, t tole.Tole) error {
	return r.client.Do(ctx, toSaveTole(t, flagInsert, identityFrom(ctx).UserID), nil)
}

func (r *ToleRepository) Update(ctx context.Context, t tole.Tole) error {
	return r.client.Do(ctx, toSaveTole(t, flagUpdate, identityFrom(ctx).UserID), nil)
}

func (r *ToleRepository) SetAllowApp(ctx context.Context, id string, allow tole.AllowApp) error {
	op := setAllowApp{ToleID: id, UserID: identityFrom(ctx).UserID, AllowApp: string(allow)}
	return r.client.Do(ctx, op, nil)
}

func (r *ToleRepository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, removeTole{ToleID: id, UserID: identityFrom(ctx).UserID}, nil)
}

func (r *ToleRepository) ExtendExpiry(ctx context.Context, id string, date time.Time) error {
	op := extendExpiry{ToleID: id, UserID: identityFrom(ctx).UserID, ExpiryDate: formatDate(date)}
	return r.client.Do(ctx, op, nil)
}
