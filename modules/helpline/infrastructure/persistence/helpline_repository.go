package persistence

import (
	"context"

	"github.com/gaunghar/admin-console/modules/helpline/domain/aggregates/helpline"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
)

const helplineEndpoint = "/api/admin/help-line"

const (
	flagList   backend.Flag = "s"
	flagInsert backend.Flag = "I"
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

type listHelplines struct {
	identity
	IsActive string `json:"IsActive"`
}

func (listHelplines) Endpoint() string   { return helplineEndpoint }
func (listHelplines) Flag() backend.Flag { return flagList }

// saveHelpline is the create and update payload. The backend reads UserId
// with a lower-case d here.
type saveHelpline struct {
	flag        backend.Flag
	ToleID      string `json:"ToleID"`
	UserID      string `json:"UserId"`
	HelplineID  string `json:"HelplineID,omitempty"`
	ForHelp     string `json:"ForHelp"`
	ContactName string `json:"ContactName"`
	Contact     string `json:"Contact"`
	IsActive    string `json:"IsActive"`
}

func (saveHelpline) Endpoint() string     { return helplineEndpoint }
func (o saveHelpline) Flag() backend.Flag { return o.flag }

type helplineByID struct {
	flag backend.Flag
	identity
	HelplineID string `json:"HelplineID"`
}

func (helplineByID) Endpoint() string     { return helplineEndpoint }
func (o helplineByID) Flag() backend.Flag { return o.flag }

type helplineRow struct {
	HelplineID  backend.Text `json:"helplineid"`
	ForHelp     backend.Text `json:"forhelp"`
	ContactName backend.Text `json:"contactname"`
	Contact     backend.Text `json:"contact"`
	IsActive    backend.Text `json:"isactive"`
}

type helplineListResponse struct {
	backend.Status
	HelpLineLst []helplineRow `json:"HelpLineLst"`
}

func toDomain(row helplineRow) helpline.Helpline {
	status := helpline.StatusInactive
	if helpline.Status(row.IsActive.String()) == helpline.StatusActive {
		status = helpline.StatusActive
	}
	return helpline.Helpline{
		ID:          row.HelplineID.String(),
		ForHelp:     row.ForHelp.String(),
		ContactName: row.ContactName.String(),
		Contact:     row.Contact.String(),
		Status:      status,
	}
}

type HelplineRepository struct {
	client *backend.Client
}

func NewHelplineRepository(client *backend.Client) helpline.Repository {
	return &HelplineRepository{client: client}
}

func (r *HelplineRepository) GetAll(ctx context.Context) ([]helpline.Helpline, error) {
	resp := &helplineListResponse{}
	op := listHelplines{identity: identityFrom(ctx), IsActive: string(helpline.StatusActive)}
	if err := r.client.Do(ctx, op, resp); err != nil {
		return nil, err
	}
	out := make([]helpline.Helpline, 0, len(resp.HelpLineLst))
	for _, row := range resp.HelpLineLst {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r *HelplineRepository) save(ctx context.Context, flag backend.Flag, h helpline.Helpline) error {
	id := identityFrom(ctx)
	status := h.Status
	if status == "" {
		status = helpline.StatusActive
	}
	return r.client.Do(ctx, saveHelpline{
		flag:        flag,
		ToleID:      id.ToleID,
		UserID:      id.UserID,
		HelplineID:  h.ID,
		ForHelp:     h.ForHelp,
		ContactName: h.ContactName,
		Contact:     h.Contact,
		IsActive:    string(status),
	}, nil)
}

func (r *HelplineRepository) Create(ctx context.Context, h helpline.Helpline) error {
	h.ID = ""
	return r.save(ctx, flagInsert, h)
}

func (r *HelplineRepository) Update(ctx context.Context, h helpline.Helpline) error {
	return r.save(ctx, flagUpdate, h)
}

func (r *HelplineRepository) Toggle(ctx context.Context, id string) error {
	return r.client.Do(ctx, helplineByID{flag: flagToggle, identity: identityFrom(ctx), HelplineID: id}, nil)
}

func (r *HelplineRepository) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, helplineByID{flag: flagRemove, identity: identityFrom(ctx), HelplineID: id}, nil)
}
