package location

import "context"

// Option is one entry of a cascade list.
type Option struct {
	ID   string
	Name string
}

type Repository interface {
	Provinces(ctx context.Context) ([]Option, error)
	Districts(ctx context.Context, provinceID string) ([]Option, error)
	Municipalities(ctx context.Context, provinceID, districtID string) ([]Option, error)
}
