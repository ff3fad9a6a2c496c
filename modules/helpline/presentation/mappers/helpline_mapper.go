package mappers

import (
	"github.com/gaunghar/admin-console/modules/helpline/domain/aggregates/helpline"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/helpline/presentation/viewmodels"
)

func HelplineToRow(h helpline.Helpline) *viewmodels.HelplineRow {
	return &viewmodels.HelplineRow{
		ID:          h.ID,
		ForHelp:     h.ForHelp,
		ContactName: h.ContactName,
		Contact:     h.Contact,
		IsActive:    string(h.Status),
		Active:      h.Status.Active(),
	}
}

func HelplineToForm(h helpline.Helpline) *viewmodels.HelplineForm {
	return &viewmodels.HelplineForm{
		ForHelp:     h.ForHelp,
		ContactName: h.ContactName,
		Contact:     h.Contact,
		IsActive:    string(h.Status),
	}
}

func DTOToForm(d *dtos.HelplineDTO) *viewmodels.HelplineForm {
	return &viewmodels.HelplineForm{
		ForHelp:     d.ForHelp,
		ContactName: d.ContactName,
		Contact:     d.Contact,
		IsActive:    d.IsActive,
	}
}
