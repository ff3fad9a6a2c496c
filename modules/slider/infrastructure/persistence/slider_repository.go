package persistence

import (
	"context"

	"github.com/gaunghar/admin-console/modules/slider/domain/aggregates/slider"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/upload"
)

const sliderEndpoint = "/api/admin/slider"

const (
	flagList   backend.Flag = "S"
	flagInsert backend.Flag = "i"
	flagUpdate backend.Flag = "U"
	flagToggle backend.Flag = "AI"
	flagRemove backend.Flag = "R"
)

type identity struct {
	ToleID string `json:"ToleID"`
	UserID string `json:"UserID"`
}

func identityFrom(ctx context.Context) identity {
	s, err := composables.UseSession(ctx)
	if err != nil {
		return identity{}
	}
	return identity{ToleID: s.ToleID, UserID: s.UserID}
}

type listSliders struct {
	identity
	IsActive string `json:"IsActive"`
}

func (listSliders) Endpoint() string   { return sliderEndpoint }
func (listSliders) Flag() backend.Flag { return flagList }

type saveSlider struct {
	flag backend.Flag
	identity
	SliderID string `json:"SliderID,omitempty"`
	Title    string `json:"Title"`
	ImgURL   string `json:"ImgUrl"`
	RedURL   string `json:"RedUrl"`
	ImgOrder int    `json:"ImgOrder"`
	IsActive string `json:"IsActive"`
}

func (saveSlider) Endpoint() string     { return sliderEndpoint }
func (o saveSlider) Flag() backend.Flag { return o.flag }

type sliderByID struct {
	flag backend.Flag
	identity
	SliderID string `json:"SliderID"`
}

func (sliderByID) Endpoint() string     { return sliderEndpoint }
func (o sliderByID) Flag() backend.Flag { return o.flag }

// sliderRow accepts both the lower-case and the capitalised spellings the
// backend has used for list rows.
type sliderRow struct {
	SliderID    backend.Text `json:"sliderid"`
	Title       backend.Text `json:"title"`
	ImgURL      backend.Text `json:"imgurl"`
	RedURL      backend.Text `json:"redurl"`
	ImgOrder    backend.Text `json:"imgorder"`
	IsActive    backend.Text `json:"isactive"`
	CreatedDate backend.Text `json:"createddate"`
	UpdatedDate backend.Text `json:"updateddate"`

	AltSliderID backend.Text `json:"SliderID"`
	AltTitle    backend.Text `json:"Title"`
	AltImgURL   backend.Text `json:"ImgUrl"`
	AltRedURL   backend.Text `json:"RedUrl"`
	AltImgOrder backend.Text `json:"Imgorder"`
	AltIsActive backend.Text `json:"IsActive"`
}

type sliderListResponse struct {
	backend.Status
	SliderLst []sliderRow `json:"sliderlst"`
}

func first(values ...backend.Text) backend.Text {
	for _, v := range values {
		if v.String() != "" {
			return v
		}
	}
	return ""
}

func toDomain(row sliderRow) slider.Slider {
	status := slider.StatusInactive
	if slider.Status(first(row.IsActive, row.AltIsActive).String()) == slider.StatusActive {
		status = slider.StatusActive
	}
	return slider.Slider{
		ID:          first(row.SliderID, row.AltSliderID).String(),
		Title:       first(row.Title, row.AltTitle).String(),
		ImgURL:      first(row.ImgURL, row.AltImgURL).String(),
		RedirectURL: first(row.RedURL, row.AltRedURL).String(),
		Order:       first(row.ImgOrder, row.AltImgOrder).Int(),
		Status:      status,
		CreatedDate: row.CreatedDate.Time(),
		UpdatedDate: row.UpdatedDate.Time(),
	}
}

type SliderRepository struct {
	client *backend.Client
}

func NewSliderRepository(client *backend.Client) slider.Repository {
	return &SliderRepository{client: client}
}

// GetAll returns the slides in backend order.
func (r *SliderRepository) GetAll(ctx context.Context) ([]slider.Slider, error) {
	resp := &sliderListResponse{}
	op := listSliders{identity: identityFrom(ctx), IsActive: string(slider.StatusActive)}
	if err := r.client.Do(ctx, op, resp); err != nil {
		return nil, err
	}
	out := make([]slider.Slider, 0, len(resp.SliderLst))
	for _, row := range resp.SliderLst {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r *SliderRepository) save(ctx context.Context, flag backend.Flag, s slider.Slider) error {
	status := s.Status
	if status == "" {
		status = slider.StatusActive
	}
	return r.client.Do(ctx, saveSlider{
		flag:     flag,
		identity: identityFrom(ctx),
		SliderID: s.ID,
		Title:    s.Title,
		ImgURL:   upload.Normalize(s.ImgURL),
		RedURL:   s.RedirectURL,
		ImgOrder: s.Order,
		IsActive: string(status),
	}, nil)
}

func (r *SliderRepository) Create(ctx context.Context, s slider.Slider) error {
	s.ID = ""
	return r.save(ctx, flagInsert, s)
}

func (r *SliderRepository) Update(ctx context.Context, s slider.Slider) error {
	return r.save(ctx, flagUpdate, s)
}

func (r *SliderRepository) Toggle(ctx context.Context, id string) error {
	return r.client.Do(ctx, sliderByID{flag: flagToggle, identity: identityFrom(ctx), SliderID: id}, nil)
}

func (r *SliderRepository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, sliderByID{flag: flagRemove, identity: identityFrom(ctx), SliderID: id}, nil)
}
