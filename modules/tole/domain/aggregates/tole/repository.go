package tole

import (
	"context"
	"time"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Tole, error)
	GetByID(ctx context.Context, id string) (Tole, error)
	Create(ctx context.Context, t Tole) error
	Update(ctx context.Context, t Tole) error
	SetAllowApp(ctx context.Context, id string, allow AllowApp) error
	Delete(ctx context.Context, id string) error
	ExtendExpiry(ctx context.Context, id string, date time.Time) error
}
