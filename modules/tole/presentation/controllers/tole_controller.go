package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
	"github.com/gaunghar/admin-console/modules/tole/presentation/controllers/dtos"
	"github.com/gaunghar/admin-console/modules/tole/presentation/mappers"
	toletemplates "github.com/gaunghar/admin-console/modules/tole/presentation/templates/pages/tole"
	"github.com/gaunghar/admin-console/modules/tole/presentation/viewmodels"
	"github.com/gaunghar/admin-console/modules/tole/services"
	"github.com/gaunghar/admin-console/pkg/application"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/htmx"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/middleware"
	"github.com/gaunghar/admin-console/pkg/shared"
	"github.com/gaunghar/admin-console/pkg/upload"
	"github.com/gaunghar/admin-console/pkg/views"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

type ToleControllerOptions struct {
	BasePath    string
	PageSize    int
	MaxLogoSize int64
}

type ToleController struct {
	app       application.Application
	toles     *services.ToleService
	locations *services.LocationService
	opts      ToleControllerOptions
}

func NewToleController(app application.Application, opts ToleControllerOptions) application.Controller {
	if opts.BasePath == "" {
		opts.BasePath = "/tole"
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	if opts.MaxLogoSize <= 0 {
		opts.MaxLogoSize = 5 << 20
	}
	return &ToleController{
		app:       app,
		toles:     app.Service(services.ToleService{}).(*services.ToleService),
		locations: app.Service(services.LocationService{}).(*services.LocationService),
		opts:      opts,
	}
}

func (c *ToleController) Key() string {
	return c.opts.BasePath
}

func (c *ToleController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.RedirectNotAuthenticated(),
		middleware.NavItems(c.app),
		middleware.WithPageContext(),
	}

	router := r.PathPrefix(c.opts.BasePath).Subrouter()
	router.Use(commonMiddleware...)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/new", c.New).Methods(http.MethodGet)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/locations/fields", c.LocationFields).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.View).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/{id}/edit", c.Edit).Methods(http.MethodGet)
	router.HandleFunc("/{id}/confirm", c.Confirm).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.Delete).Methods(http.MethodPost)
	router.HandleFunc("/{id}/allow-app", c.SetAllowApp).Methods(http.MethodPost)
	router.HandleFunc("/{id}/extend", c.ExtendForm).Methods(http.MethodGet)
	router.HandleFunc("/{id}/extend", c.Extend).Methods(http.MethodPost)
}

func (c *ToleController) path(parts ...string) string {
	p := c.opts.BasePath
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func (c *ToleController) flash(w http.ResponseWriter, r *http.Request) views.Notice {
	success, _ := composables.UseFlash(w, r, flashSuccess)
	failure, _ := composables.UseFlash(w, r, flashError)
	return views.Notice{Success: string(success), Error: string(failure)}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, to, name, msg string) {
	shared.SetFlash(w, name, []byte(msg))
	htmx.Redirect(w, r, to)
}

var statusOptions = []viewmodels.StatusOption{
	{Value: string(tole.FilterAll), Label: "Tole.List.AllStatuses"},
	{Value: string(tole.FilterActive), Label: "Tole.Status.Active"},
	{Value: string(tole.FilterInactive), Label: "Tole.List.Inactive"},
	{Value: string(tole.FilterExpired), Label: "Tole.Status.Expired"},
}

func statsCards(s tole.Stats) []viewmodels.StatsCard {
	return []viewmodels.StatsCard{
		{Label: "Tole.Stats.Total", Value: s.Total},
		{Label: "Tole.Stats.Active", Value: s.Active, Class: "badge-active"},
		{Label: "Tole.Stats.Expired", Value: s.Expired, Class: "badge-expired"},
		{Label: "Tole.Stats.Disabled", Value: s.Disabled, Class: "badge-disabled"},
	}
}

func atoiOr(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (c *ToleController) filterFromQuery(q url.Values) tole.ListFilter {
	f := tole.ListFilter{
		Search:   q.Get("q"),
		Status:   tole.ParseStatusFilter(q.Get("status")),
		Page:     atoiOr(q.Get("page"), 0),
		PageSize: atoiOr(q.Get("size"), c.opts.PageSize),
	}
	return f.Normalize(c.opts.PageSize, atoiOr(q.Get("prev_size"), 0))
}

func (c *ToleController) List(w http.ResponseWriter, r *http.Request) {
	notice := c.flash(w, r)
	filter := c.filterFromQuery(r.URL.Query())
	now := c.toles.Now()

	all, err := c.toles.List(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list toles")
		notice.Error = backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.LoadFailed"))
	}

	filtered := filter.Apply(all, now)
	pageItems, page := filter.Paginate(filtered)
	rows := make([]*viewmodels.ToleRow, 0, len(pageItems))
	for _, t := range pageItems {
		rows = append(rows, mappers.ToleToRow(t, now))
	}

	query := url.Values{}
	if filter.Search != "" {
		query.Set("q", filter.Search)
	}
	query.Set("status", string(filter.Status))

	props := &viewmodels.ToleListPageProps{
		Notice:    notice,
		Rows:      rows,
		Stats:     statsCards(tole.ComputeStats(all, now)),
		Search:    filter.Search,
		Status:    string(filter.Status),
		Statuses:  statusOptions,
		PageSize:  filter.PageSize,
		PageSizes: tole.PageSizes,
		Pagination: views.Pagination{
			Page:     page,
			PageSize: filter.PageSize,
			Total:    len(filtered),
			Path:     c.opts.BasePath,
			Query:    query,
		},
		ExportURL: c.path("export") + "?" + query.Encode(),
	}
	templ.Handler(toletemplates.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *ToleController) Export(w http.ResponseWriter, r *http.Request) {
	filter := c.filterFromQuery(r.URL.Query())
	all, err := c.toles.List(r.Context())
	if err != nil {
		redirectWithFlash(w, r, c.opts.BasePath, flashError, backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.LoadFailed")))
		return
	}
	now := c.toles.Now()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=toles-%s.xlsx", now.Format("20060102")))
	if err := services.WriteXLSX(w, filter.Apply(all, now), now); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to export toles")
	}
}

func (c *ToleController) fieldsURL() string {
	return c.path("locations", "fields")
}

// loadSelector fills the cascade lists for sel. A lookup failure leaves the
// lists empty and is reported as a page notice.
func (c *ToleController) loadSelector(r *http.Request, sel *location.Selector) string {
	if err := c.locations.Load(r.Context(), sel); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to load locations")
		return backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.LocationsFailed"))
	}
	return ""
}

func (c *ToleController) renderForm(w http.ResponseWriter, r *http.Request, props *viewmodels.ToleFormPageProps, sel *location.Selector, status int) {
	props.Location = mappers.SelectorToProps(sel, c.fieldsURL(), props.Errors)
	var component templ.Component
	if props.IsNew {
		component = toletemplates.New(props)
	} else {
		component = toletemplates.Edit(props)
	}
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (c *ToleController) New(w http.ResponseWriter, r *http.Request) {
	sel := &location.Selector{}
	props := &viewmodels.ToleFormPageProps{
		Form:     mappers.ToleToForm(tole.NewDefaults(c.toles.Now())),
		Errors:   map[string]string{},
		IsNew:    true,
		PostTo:   c.opts.BasePath,
		CancelTo: c.opts.BasePath,
	}
	props.Error = c.loadSelector(r, sel)
	c.renderForm(w, r, props, sel, http.StatusOK)
}

func (c *ToleController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entity, err := c.toles.Get(r.Context(), id)
	if err != nil {
		c.notFoundOr(w, r, err)
		return
	}
	sel := &location.Selector{
		Province:     entity.Location.ProvinceID,
		District:     entity.Location.DistrictID,
		Municipality: entity.Location.MunicipalityID,
	}
	props := &viewmodels.ToleFormPageProps{
		Form:     mappers.ToleToForm(entity),
		Errors:   map[string]string{},
		PostTo:   c.path(id),
		CancelTo: c.opts.BasePath,
	}
	props.Error = c.loadSelector(r, sel)
	c.renderForm(w, r, props, sel, http.StatusOK)
}

// selectorFromForm rebuilds the cascade from a submitted form, dropping
// children whose parent changed since their options were loaded.
func selectorFromForm(dto *dtos.ToleFormDTO) *location.Selector {
	sel := location.FromScope(dto.ScopeProvince, dto.ScopeDistrict, dto.ProvinceID, dto.DistrictID, dto.MunicipalityID)
	dto.DistrictID, dto.MunicipalityID = sel.District, sel.Municipality
	return sel
}

// LocationFields re-renders the cascade after a select changed.
func (c *ToleController) LocationFields(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseQuery(&dtos.ToleFormDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto.Normalize()
	sel := selectorFromForm(dto)
	props := &viewmodels.ToleFormPageProps{Form: &viewmodels.ToleForm{}, Errors: map[string]string{}}
	if msg := c.loadSelector(r, sel); msg != "" {
		props.Errors["ProvinceID"] = msg
	}
	props.Location = mappers.SelectorToProps(sel, c.fieldsURL(), props.Errors)
	templ.Handler(toletemplates.LocationFields(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *ToleController) readLogo(r *http.Request) (string, string) {
	img, err := upload.FromRequest(r, "Logo", c.opts.MaxLogoSize)
	switch {
	case err == nil && img == nil:
		return "", ""
	case err == nil:
		return img.Encoded, ""
	case errors.Is(err, upload.ErrTooLarge):
		return "", intl.T(r.Context(), "Tole.Errors.ImageTooLarge")
	case errors.Is(err, upload.ErrNotImage):
		return "", intl.T(r.Context(), "Tole.Errors.ImageInvalid")
	default:
		return "", err.Error()
	}
}

func (c *ToleController) Create(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, true)
}

func (c *ToleController) Update(w http.ResponseWriter, r *http.Request) {
	c.save(w, r, false)
}

func (c *ToleController) save(w http.ResponseWriter, r *http.Request, creating bool) {
	dto, err := composables.UseForm(&dtos.ToleFormDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !creating {
		dto.ToleID = mux.Vars(r)["id"]
	}
	dto.Normalize()
	sel := selectorFromForm(dto)

	errorsMap, ok := dto.Ok(r.Context(), creating)
	logo, logoErr := c.readLogo(r)
	if logoErr != "" {
		errorsMap["Logo"] = logoErr
		ok = false
	}

	props := &viewmodels.ToleFormPageProps{
		Errors:   errorsMap,
		IsNew:    creating,
		PostTo:   c.opts.BasePath,
		CancelTo: c.opts.BasePath,
	}
	if !creating {
		props.PostTo = c.path(dto.ToleID)
	}
	if !ok {
		props.Form = mappers.DTOToForm(dto, logo)
		if msg := c.loadSelector(r, sel); msg != "" {
			props.Error = msg
		}
		c.renderForm(w, r, props, sel, http.StatusUnprocessableEntity)
		return
	}

	entity := dto.ToEntity(logo)
	if creating {
		err = c.toles.Create(r.Context(), entity)
	} else {
		err = c.toles.Update(r.Context(), entity)
	}
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to save tole")
		props.Form = mappers.DTOToForm(dto, logo)
		props.Error = backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.SaveFailed"))
		c.loadSelector(r, sel)
		c.renderForm(w, r, props, sel, http.StatusOK)
		return
	}

	msg := intl.T(r.Context(), "Tole.Flash.Updated")
	if creating {
		msg = intl.T(r.Context(), "Tole.Flash.Created")
	}
	redirectWithFlash(w, r, c.opts.BasePath, flashSuccess, msg)
}

func (c *ToleController) notFoundOr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, tole.ErrNotFound) {
		redirectWithFlash(w, r, c.opts.BasePath, flashError, intl.T(r.Context(), "Tole.Errors.NotFound"))
		return
	}
	composables.UseLogger(r.Context()).WithError(err).Warn("failed to load tole")
	redirectWithFlash(w, r, c.opts.BasePath, flashError, backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.LoadFailed")))
}

func (c *ToleController) View(w http.ResponseWriter, r *http.Request) {
	entity, err := c.toles.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		c.notFoundOr(w, r, err)
		return
	}
	sel := &location.Selector{
		Province:     entity.Location.ProvinceID,
		District:     entity.Location.DistrictID,
		Municipality: entity.Location.MunicipalityID,
	}
	// names are cosmetic, ids are shown when the lookup fails
	_ = c.loadSelector(r, sel)
	props := &viewmodels.ToleViewPageProps{
		Notice: c.flash(w, r),
		Tole:   mappers.ToleToDetail(entity, sel, c.toles.Now()),
	}
	templ.Handler(toletemplates.View(props), templ.WithStreaming()).ServeHTTP(w, r)
}

// Confirm asks before a delete or an app access change. It makes no backend write.
func (c *ToleController) Confirm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	entity, err := c.toles.Get(r.Context(), id)
	if err != nil {
		c.notFoundOr(w, r, err)
		return
	}
	data := map[string]interface{}{"Name": entity.Name}
	props := &viewmodels.ToleConfirmPageProps{
		Tole:   mappers.ToleToRow(entity, c.toles.Now()),
		Action: r.URL.Query().Get("action"),
	}
	switch props.Action {
	case "delete":
		props.Message = intl.T(r.Context(), "Tole.Confirm.Delete", data)
		props.PostTo = c.path(id, "delete")
		props.Danger = true
	case "enable":
		props.Message = intl.T(r.Context(), "Tole.Confirm.Enable", data)
		props.PostTo = c.path(id, "allow-app")
		props.AllowApp = string(tole.AllowAppYes)
	case "disable":
		props.Message = intl.T(r.Context(), "Tole.Confirm.Disable", data)
		props.PostTo = c.path(id, "allow-app")
		props.AllowApp = string(tole.AllowAppNo)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}
	templ.Handler(toletemplates.Confirm(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *ToleController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.toles.Remove(r.Context(), mux.Vars(r)["id"]); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to delete tole")
		redirectWithFlash(w, r, c.opts.BasePath, flashError, backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.DeleteFailed")))
		return
	}
	redirectWithFlash(w, r, c.opts.BasePath, flashSuccess, intl.T(r.Context(), "Tole.Flash.Deleted"))
}

func (c *ToleController) SetAllowApp(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.AllowAppDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	allow, err := dto.Value()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := c.toles.SetAllowApp(r.Context(), mux.Vars(r)["id"], allow); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to update app access")
		redirectWithFlash(w, r, c.opts.BasePath, flashError, backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.StatusFailed")))
		return
	}
	msg := intl.T(r.Context(), "Tole.Flash.Disabled")
	if allow == tole.AllowAppYes {
		msg = intl.T(r.Context(), "Tole.Flash.Enabled")
	}
	redirectWithFlash(w, r, c.opts.BasePath, flashSuccess, msg)
}

func (c *ToleController) renderExtend(w http.ResponseWriter, r *http.Request, row *viewmodels.ToleRow, date, errMsg string, status int) {
	props := &viewmodels.ToleExtendPageProps{
		Tole:       row,
		ExpiryDate: date,
		Error:      errMsg,
		PostTo:     c.path(row.ID, "extend"),
	}
	templ.Handler(toletemplates.Extend(props), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (c *ToleController) ExtendForm(w http.ResponseWriter, r *http.Request) {
	entity, err := c.toles.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		c.notFoundOr(w, r, err)
		return
	}
	def := tole.NewDefaults(c.toles.Now()).ExpiryDate
	c.renderExtend(w, r, mappers.ToleToRow(entity, c.toles.Now()), def.Format(constants.DateLayout), "", http.StatusOK)
}

func (c *ToleController) Extend(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	dto, err := composables.UseForm(&dtos.ExtendExpiryDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	row := &viewmodels.ToleRow{ID: id, Name: dto.Name, ExpiryDate: dto.Current}

	date, err := dto.Date()
	if err != nil {
		c.renderExtend(w, r, row, dto.ExpiryDate, intl.T(r.Context(), "Tole.Errors.ExpiryNotInFuture"), http.StatusUnprocessableEntity)
		return
	}
	if err := c.toles.ExtendExpiry(r.Context(), id, date); err != nil {
		if errors.Is(err, tole.ErrExpiryNotInFuture) {
			c.renderExtend(w, r, row, dto.ExpiryDate, intl.T(r.Context(), "Tole.Errors.ExpiryNotInFuture"), http.StatusUnprocessableEntity)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to extend tole expiry")
		c.renderExtend(w, r, row, dto.ExpiryDate, backend.UserMessage(err, intl.T(r.Context(), "Tole.Errors.ExtendFailed")), http.StatusOK)
		return
	}
	redirectWithFlash(w, r, c.opts.BasePath, flashSuccess, intl.T(r.Context(), "Tole.Flash.Extended"))
}
