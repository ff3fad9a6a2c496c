package persistence

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/upload"
)

// parseDate keeps the calendar date of whatever the backend sent.
func parseDate(v backend.Text) time.Time {
	t := v.Time()
	if t.IsZero() {
		return t
	}
	return tole.Day(t)
}

func parseDecimal(v backend.Text) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DateLayout)
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func toDomainTole(row toleRow) tole.Tole {
	allow := tole.AllowAppYes
	if strings.EqualFold(row.AllowApp.String(), string(tole.AllowAppNo)) {
		allow = tole.AllowAppNo
	}
	return tole.Tole{
		ID:      row.ToleID.String(),
		Name:    row.Name.String(),
		Address: row.Address.String(),
		Location: tole.Location{
			ProvinceID:     row.Province.String(),
			DistrictID:     row.District.String(),
			MunicipalityID: row.Municipality.String(),
		},
		WardNo:      row.WadaNo.Int(),
		Contact:     row.Contact.String(),
		Email:       row.Email.String(),
		Logo:        upload.Normalize(row.Logo.String()),
		About:       row.About.String(),
		Website:     row.Website.String(),
		Facebook:    row.Fb.String(),
		RegDate:     parseDate(row.RegDate),
		Latitude:    parseDecimal(row.GoogLat),
		Longitude:   parseDecimal(row.GoogLong),
		AllowApp:    allow,
		ExpiryDate:  parseDate(row.ExpiryDate),
		CreatedDate: parseDate(row.CreatedDate),
	}
}

func toSaveTole(t tole.Tole, flag backend.Flag, userID string) saveTole {
	regDate := t.RegDate
	if regDate.IsZero() {
		regDate = tole.Day(time.Now())
	}
	allow := t.AllowApp
	if allow == "" {
		allow = tole.AllowAppYes
	}
	return saveTole{
		flag:           flag,
		ToleID:         t.ID,
		Name:           t.Name,
		Address:        t.Address,
		ProvinceNo:     atoi(t.Location.ProvinceID),
		DistrictID:     atoi(t.Location.DistrictID),
		MunicipalityID: atoi(t.Location.MunicipalityID),
		WadaNo:         t.WardNo,
		Contact:        t.Contact,
		Email:          t.Email,
		Logo:           upload.Normalize(t.Logo),
		About:          t.About,
		Website:        t.Website,
		Fb:             t.Facebook,
		RegDate:        formatDate(regDate),
		GoogLat:        t.Latitude.String(),
		GoogLong:       t.Longitude.String(),
		AllowApp:       string(allow),
		ExpiryDate:     formatDate(t.ExpiryDate),
		UserID:         userID,
	}
}
