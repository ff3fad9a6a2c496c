package services

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/pkg/constants"
)

const exportSheet = "Toles"

var exportHeader = []interface{}{
	"Tole ID", "Name", "Address", "Province", "District", "Municipality", "Ward",
	"Contact", "Email", "Website", "Facebook", "Registered", "Latitude", "Longitude",
	"Allow App", "Expiry", "Status",
}

func exportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DateLayout)
}

// WriteXLSX writes toles as a single-sheet workbook. Status is derived at now.
func WriteXLSX(w io.Writer, toles []tole.Tole, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "header style")
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return errors.Wrap(err, "apply header style")
	}

	for i, t := range toles {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			t.ID, t.Name, t.Address,
			t.Location.ProvinceID, t.Location.DistrictID, t.Location.MunicipalityID, t.WardNo,
			t.Contact, t.Email, t.Website, t.Facebook,
			exportDate(t.RegDate), t.Latitude.String(), t.Longitude.String(),
			string(t.AllowApp), exportDate(t.ExpiryDate), string(tole.StatusAt(t, now)),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write row %d", i+2)
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "Q", 16); err != nil {
		return errors.Wrap(err, "column width")
	}
	return f.Write(w)
}
