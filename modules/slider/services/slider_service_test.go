package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaunghar/admin-console/modules/slider/domain/aggregates/slider"
)

type memoryRepo struct {
	list      []slider.Slider
	updates   []slider.Slider
	created   []slider.Slider
	failAfter int
	failErr   error
}

func (m *memoryRepo) GetAll(context.Context) ([]slider.Slider, error) {
	return append([]slider.Slider(nil), m.list...), nil
}

func (m *memoryRepo) Create(_ context.Context, s slider.Slider) error {
	m.created = append(m.created, s)
	return nil
}

func (m *memoryRepo) Update(_ context.Context, s slider.Slider) error {
	if m.failErr != nil && len(m.updates) >= m.failAfter {
		return m.failErr
	}
	m.updates = append(m.updates, s)
	return nil
}

func (m *memoryRepo) Toggle(context.Context, string) error { return nil }
func (m *memoryRepo) Delete(context.Context, string) error { return nil }

func newRepo() *memoryRepo {
	return &memoryRepo{list: []slider.Slider{
		{ID: "3", Title: "Festival", ImgURL: "c.jpg", Order: 3, Status: slider.StatusActive},
		{ID: "1", Title: "Welcome", ImgURL: "a.jpg", Order: 1, Status: slider.StatusActive},
		{ID: "2", Title: "Cleanup", ImgURL: "b.jpg", Order: 2, Status: slider.StatusInactive},
	}}
}

func TestSliderService_ListSorted(t *testing.T) {
	list, err := NewSliderService(newRepo()).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
	assert.Equal(t, "3", list[2].ID)
}

func TestSliderService_CreateNeedsImage(t *testing.T) {
	repo := newRepo()
	err := NewSliderService(repo).Create(context.Background(), slider.Slider{Title: "No picture", Order: 4})
	assert.ErrorIs(t, err, slider.ErrImageRequired)
	assert.Empty(t, repo.created)
}

func TestSliderService_UpdateKeepsImage(t *testing.T) {
	repo := newRepo()
	err := NewSliderService(repo).Update(context.Background(), slider.Slider{ID: "2", Title: "Cleanup day", Order: 2})
	require.NoError(t, err)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, "b.jpg", repo.updates[0].ImgURL)
	assert.Equal(t, slider.StatusInactive, repo.updates[0].Status)
}

func TestSliderService_Move(t *testing.T) {
	repo := newRepo()
	moved, err := NewSliderService(repo).Move(context.Background(), "2", slider.Up)
	require.NoError(t, err)
	assert.True(t, moved)
	require.Len(t, repo.updates, 2)
	assert.Equal(t, "2", repo.updates[0].ID)
	assert.Equal(t, 1, repo.updates[0].Order)
	assert.Equal(t, "1", repo.updates[1].ID)
	assert.Equal(t, 2, repo.updates[1].Order)
	assert.Equal(t, "Welcome", repo.updates[1].Title)
}

func TestSliderService_MoveAtEdge(t *testing.T) {
	repo := newRepo()
	moved, err := NewSliderService(repo).Move(context.Background(), "3", slider.Down)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, repo.updates)
}

func TestSliderService_MovePartialFailure(t *testing.T) {
	repo := newRepo()
	repo.failAfter = 1
	repo.failErr = errors.New("boom")

	_, err := NewSliderService(repo).Move(context.Background(), "2", slider.Down)

	require.Error(t, err)
	assert.ErrorIs(t, err, slider.ErrPartialReorder)
	assert.ErrorContains(t, err, "boom")
	assert.Len(t, repo.updates, 1)
}
