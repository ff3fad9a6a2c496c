package mappers

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/gaunghar/admin-console/modules/slider/domain/aggregates/slider"
	"github.com/gaunghar/admin-console/modules/slider/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/slider/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/constants"
)

// ImageRef reduces a stored server path such as photo\photo/slider\x.jpg to
// its file name. Base64 payloads, data URIs and URLs pass through.
func ImageRef(stored string) string {
	stored = strings.TrimSpace(stored)
	switch {
	case stored == "",
		strings.HasPrefix(stored, "data:"),
		strings.HasPrefix(stored, "http://"),
		strings.HasPrefix(stored, "https://"):
		return stored
	}
	if !strings.ContainsAny(stored, `\/`) {
		return stored
	}
	if _, err := base64.StdEncoding.DecodeString(stored); err == nil {
		return stored
	}
	parts := strings.FieldsFunc(stored, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

func SlidersToRows(list []slider.Slider) []*viewmodels.SliderRow {
	rows := make([]*viewmodels.SliderRow, 0, len(list))
	for i, s := range list {
		updated := ""
		if !s.UpdatedDate.IsZero() {
			updated = s.UpdatedDate.Format(constants.DateLayout)
		}
		rows = append(rows, &viewmodels.SliderRow{
			ID:          s.ID,
			Title:       s.Title,
			Image:       ImageRef(s.ImgURL),
			RedirectURL: s.RedirectURL,
			Order:       s.Order,
			Active:      s.Status.Active(),
			First:       i == 0,
			Last:        i == len(list)-1,
			UpdatedDate: updated,
		})
	}
	return rows
}

func SliderToForm(s slider.Slider) *viewmodels.SliderForm {
	return &viewmodels.SliderForm{
		Title:    s.Title,
		Image:    ImageRef(s.ImgURL),
		RedURL:   s.RedirectURL,
		ImgOrder: strconv.Itoa(s.Order),
		IsActive: string(s.Status),
	}
}

func DTOToForm(d *dtos.SliderDTO, image string) *viewmodels.SliderForm {
	return &viewmodels.SliderForm{
		Title:    d.Title,
		Image:    image,
		RedURL:   d.RedURL,
		ImgOrder: d.ImgOrder,
		IsActive: d.IsActive,
	}
}
