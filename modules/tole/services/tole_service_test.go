package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
	"github.com/gaunghar/admin-console/modules/tole/services"
)

var now = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

type fakeRepo struct {
	mu      sync.Mutex
	toles   map[string]tole.Tole
	calls   []string
	extends []time.Time
}

func newFakeRepo(toles ...tole.Tole) *fakeRepo {
	r := &fakeRepo{toles: map[string]tole.Tole{}}
	for _, t := range toles {
		r.toles[t.ID] = t
	}
	return r
}

func (r *fakeRepo) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *fakeRepo) GetAll(context.Context) ([]tole.Tole, error) {
	r.record("GetAll")
	out := make([]tole.Tole, 0, len(r.toles))
	for _, t := range r.toles {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (tole.Tole, error) {
	r.record("GetByID")
	t, ok := r.toles[id]
	if !ok {
		return tole.Tole{}, tole.ErrNotFound
	}
	return t, nil
}

func (r *fakeRepo) Create(_ context.Context, t tole.Tole) error {
	r.record("Create")
	r.toles[t.ID] = t
	return nil
}

func (r *fakeRepo) Update(_ context.Context, t tole.Tole) error {
	r.record("Update")
	r.toles[t.ID] = t
	return nil
}

func (r *fakeRepo) SetAllowApp(_ context.Context, id string, allow tole.AllowApp) error {
	r.record("SetAllowApp")
	t := r.toles[id]
	t.AllowApp = allow
	r.toles[id] = t
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.record("Delete")
	delete(r.toles, id)
	return nil
}

func (r *fakeRepo) ExtendExpiry(_ context.Context, id string, date time.Time) error {
	r.record("ExtendExpiry")
	r.extends = append(r.extends, date)
	return nil
}

func newService(repo tole.Repository) *services.ToleService {
	return services.NewToleService(repo).WithClock(func() time.Time { return now })
}

func TestToleService_ExtendExpiryRejectsPastWithoutCall(t *testing.T) {
	repo := newFakeRepo(tole.Tole{ID: "T-1"})
	svc := newService(repo)

	for _, date := range []time.Time{tole.Day(now), now.AddDate(0, 0, -10)} {
		err := svc.ExtendExpiry(context.Background(), "T-1", date)
		require.ErrorIs(t, err, tole.ErrExpiryNotInFuture)
	}
	assert.Empty(t, repo.calls)

	future := tole.Day(now).AddDate(1, 0, 0)
	require.NoError(t, svc.ExtendExpiry(context.Background(), "T-1", future))
	assert.Equal(t, []string{"ExtendExpiry"}, repo.calls)
	assert.Equal(t, []time.Time{future}, repo.extends)
}

func TestToleService_UpdateKeepsLogo(t *testing.T) {
	repo := newFakeRepo(tole.Tole{ID: "T-1", Name: "Old", Logo: "aGVsbG8=", RegDate: tole.Day(now)})
	svc := newService(repo)

	require.NoError(t, svc.Update(context.Background(), tole.Tole{ID: "T-1", Name: "New"}))
	got := repo.toles["T-1"]
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "aGVsbG8=", got.Logo)
	assert.Equal(t, tole.Day(now), got.RegDate)

	require.NoError(t, svc.Update(context.Background(), tole.Tole{ID: "T-1", Name: "New", Logo: "d29ybGQ="}))
	assert.Equal(t, "d29ybGQ=", repo.toles["T-1"].Logo)
}

func TestToleService_UpdateUnknown(t *testing.T) {
	svc := newService(newFakeRepo())
	err := svc.Update(context.Background(), tole.Tole{ID: "missing"})
	assert.ErrorIs(t, err, tole.ErrNotFound)
}

func TestToleService_CreateDefaults(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, newService(repo).Create(context.Background(), tole.Tole{ID: "T-9", Name: "Nine"}))
	got := repo.toles["T-9"]
	assert.Equal(t, tole.AllowAppYes, got.AllowApp)
	assert.Equal(t, tole.Day(now), got.RegDate)
}

func TestToleService_RemoveThenList(t *testing.T) {
	repo := newFakeRepo(tole.Tole{ID: "T-1"}, tole.Tole{ID: "T-2"})
	svc := newService(repo)

	require.NoError(t, svc.Remove(context.Background(), "T-1"))
	toles, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, toles, 1)
	assert.Equal(t, "T-2", toles[0].ID)
}

func TestToleService_SetAllowAppRejectsUnknownValue(t *testing.T) {
	repo := newFakeRepo(tole.Tole{ID: "T-1"})
	err := newService(repo).SetAllowApp(context.Background(), "T-1", "X")
	require.Error(t, err)
	assert.Empty(t, repo.calls)
}

func TestDiff(t *testing.T) {
	before := tole.Tole{ID: "T-1", Name: "Old", Contact: "1"}
	after := tole.Tole{ID: "T-1", Name: "New", Contact: "1"}
	patch, err := services.Diff(before, after)
	require.NoError(t, err)
	require.Len(t, patch, 1)
	raw, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"op":"replace","path":"/name","value":"New"}]`, string(raw))
}

func TestWriteXLSX(t *testing.T) {
	toles := []tole.Tole{
		{ID: "T-1", Name: "Shanti", AllowApp: tole.AllowAppYes, ExpiryDate: now.AddDate(1, 0, 0)},
		{ID: "T-2", Name: "Milan", AllowApp: tole.AllowAppNo},
	}
	var buf bytes.Buffer
	require.NoError(t, services.WriteXLSX(&buf, toles, now))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Toles")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tole ID", rows[0][0])
	assert.Equal(t, "T-1", rows[1][0])
	assert.Equal(t, "Active", rows[1][len(rows[1])-1])
	assert.Equal(t, "Disabled", rows[2][len(rows[2])-1])
}

type fakeLocations struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeLocations) add(c string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeLocations) Provinces(context.Context) ([]location.Option, error) {
	f.add("P")
	return []location.Option{{ID: "1", Name: "Koshi"}, {ID: "3", Name: "Bagmati"}}, nil
}

func (f *fakeLocations) Districts(_ context.Context, p string) ([]location.Option, error) {
	f.add("D" + p)
	return []location.Option{{ID: "27", Name: "Kathmandu"}}, nil
}

func (f *fakeLocations) Municipalities(_ context.Context, p, d string) ([]location.Option, error) {
	f.add("M" + p + "/" + d)
	return []location.Option{{ID: "278", Name: "Kathmandu Metropolitan"}}, nil
}

func TestLocationService_Load(t *testing.T) {
	repo := &fakeLocations{}
	svc := services.NewLocationService(repo)

	sel := &location.Selector{Province: "3", District: "27"}
	require.NoError(t, svc.Load(context.Background(), sel))
	assert.Len(t, sel.Provinces, 2)
	assert.Len(t, sel.Districts, 1)
	assert.Len(t, sel.Municipalities, 1)
	assert.ElementsMatch(t, []string{"P", "D3", "M3/27"}, repo.calls)
}

func TestLocationService_LoadProvincesOnly(t *testing.T) {
	repo := &fakeLocations{}
	sel := &location.Selector{}
	require.NoError(t, services.NewLocationService(repo).Load(context.Background(), sel))
	assert.Equal(t, []string{"P"}, repo.calls)
	assert.Nil(t, sel.Districts)
}

type cancelAwareLocations struct {
	fakeLocations
}

func (f *cancelAwareLocations) Districts(ctx context.Context, p string) ([]location.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.fakeLocations.Districts(ctx, p)
}

func TestLocationService_LoadAbortedKeepsSelection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sel := &location.Selector{Province: "3", Provinces: []location.Option{{ID: "3", Name: "Bagmati"}}}
	err := services.NewLocationService(&cancelAwareLocations{}).Load(ctx, sel)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []location.Option{{ID: "3", Name: "Bagmati"}}, sel.Provinces)
	assert.Nil(t, sel.Districts)
}
