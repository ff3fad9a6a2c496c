package mappers

import (
	"strconv"
	"time"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
	"github.com/gaunghar/admin-console/modules/tole/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/tole/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/constants"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DateLayout)
}

func statusClass(s tole.Status) string {
	switch s {
	case tole.StatusDisabled:
		return "badge-disabled"
	case tole.StatusExpired:
		return "badge-expired"
	default:
		return "badge-active"
	}
}

func ToleToRow(t tole.Tole, now time.Time) *viewmodels.ToleRow {
	status := tole.StatusAt(t, now)
	return &viewmodels.ToleRow{
		ID:          t.ID,
		Name:        t.Name,
		Address:     t.Address,
		WardNo:      t.WardNo,
		Contact:     t.Contact,
		Email:       t.Email,
		Logo:        t.Logo,
		AllowApp:    string(t.AllowApp),
		AllowAppOn:  t.AllowApp == tole.AllowAppYes,
		Status:      string(status),
		StatusClass: statusClass(status),
		RegDate:     formatDate(t.RegDate),
		ExpiryDate:  formatDate(t.ExpiryDate),
	}
}

// ToleToDetail resolves location names from sel, falling back to the stored ids.
func ToleToDetail(t tole.Tole, sel *location.Selector, now time.Time) *viewmodels.ToleDetail {
	province, district, municipality := sel.Names()
	if province == "" {
		province = t.Location.ProvinceID
	}
	if district == "" {
		district = t.Location.DistrictID
	}
	if municipality == "" {
		municipality = t.Location.MunicipalityID
	}
	return &viewmodels.ToleDetail{
		ToleRow:      *ToleToRow(t, now),
		Province:     province,
		District:     district,
		Municipality: municipality,
		About:        t.About,
		Website:      t.Website,
		Facebook:     t.Facebook,
		Latitude:     t.Latitude.String(),
		Longitude:    t.Longitude.String(),
		CreatedDate:  formatDate(t.CreatedDate),
	}
}

func ToleToForm(t tole.Tole) *viewmodels.ToleForm {
	ward := ""
	if t.WardNo > 0 {
		ward = strconv.Itoa(t.WardNo)
	}
	return &viewmodels.ToleForm{
		ToleID:     t.ID,
		Name:       t.Name,
		Address:    t.Address,
		WardNo:     ward,
		Contact:    t.Contact,
		Email:      t.Email,
		Logo:       t.Logo,
		About:      t.About,
		Website:    t.Website,
		Facebook:   t.Facebook,
		RegDate:    formatDate(t.RegDate),
		Latitude:   t.Latitude.String(),
		Longitude:  t.Longitude.String(),
		AllowApp:   string(t.AllowApp),
		ExpiryDate: formatDate(t.ExpiryDate),
	}
}

func DTOToForm(d *dtos.ToleFormDTO, logo string) *viewmodels.ToleForm {
	return &viewmodels.ToleForm{
		ToleID:     d.ToleID,
		Name:       d.Name,
		Address:    d.Address,
		WardNo:     d.WardNo,
		Contact:    d.Contact,
		Email:      d.Email,
		Logo:       logo,
		About:      d.About,
		Website:    d.Website,
		Facebook:   d.Facebook,
		RegDate:    d.RegDate,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
		AllowApp:   d.AllowApp,
		ExpiryDate: d.ExpiryDate,
	}
}

func options(opts []location.Option) []viewmodels.LocationOption {
	out := make([]viewmodels.LocationOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, viewmodels.LocationOption{ID: o.ID, Name: o.Name})
	}
	return out
}

func SelectorToProps(sel *location.Selector, fieldsURL string, errs map[string]string) *viewmodels.LocationFieldsProps {
	if errs == nil {
		errs = map[string]string{}
	}
	return &viewmodels.LocationFieldsProps{
		Province:       sel.Province,
		District:       sel.District,
		Municipality:   sel.Municipality,
		Provinces:      options(sel.Provinces),
		Districts:      options(sel.Districts),
		Municipalities: options(sel.Municipalities),
		DistrictOn:     sel.DistrictEnabled(),
		MunicipalityOn: sel.MunicipalityEnabled(),
		FieldsURL:      fieldsURL,
		Errors:         errs,
	}
}
