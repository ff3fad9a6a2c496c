package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaunghar/admin-console/modules/tole/domain/entities/location"
)

func opts(ids ...string) []location.Option {
	out := make([]location.Option, 0, len(ids))
	for _, id := range ids {
		out = append(out, location.Option{ID: id, Name: "name-" + id})
	}
	return out
}

func TestSelector_SelectProvinceClearsChildren(t *testing.T) {
	s := &location.Selector{
		Province: "1", District: "10", Municipality: "100",
		Districts: opts("10", "11"), Municipalities: opts("100"),
	}

	s.SelectProvince("2")
	assert.Equal(t, "2", s.Province)
	assert.Empty(t, s.District)
	assert.Empty(t, s.Municipality)
	assert.Nil(t, s.Districts)
	assert.Nil(t, s.Municipalities)
	assert.False(t, s.MunicipalityEnabled())
	assert.True(t, s.DistrictEnabled())
}

func TestSelector_EmptyProvinceDisablesDistrict(t *testing.T) {
	s := &location.Selector{Province: "1"}
	s.SelectProvince("")
	assert.False(t, s.DistrictEnabled())
}

func TestSelector_SelectDistrictKeepsProvince(t *testing.T) {
	s := &location.Selector{Province: "1", District: "10", Municipality: "100", Municipalities: opts("100")}

	s.SelectDistrict("11")
	assert.Equal(t, "1", s.Province)
	assert.Equal(t, "11", s.District)
	assert.Empty(t, s.Municipality)
	assert.Nil(t, s.Municipalities)
}

func TestSelector_SelectMunicipalityTouchesNothingElse(t *testing.T) {
	s := &location.Selector{Province: "1", District: "10", Districts: opts("10")}
	s.SelectMunicipality("100")
	assert.Equal(t, "100", s.Municipality)
	assert.Equal(t, "10", s.District)
	assert.Len(t, s.Districts, 1)
}

func TestFromScope(t *testing.T) {
	cases := []struct {
		name                         string
		scopeProvince, scopeDistrict string
		province, district, muni     string
		want                         location.Selector
	}{
		{
			name:          "consistent",
			scopeProvince: "1", scopeDistrict: "10",
			province: "1", district: "10", muni: "100",
			want: location.Selector{Province: "1", District: "10", Municipality: "100"},
		},
		{
			name:          "province changed",
			scopeProvince: "1", scopeDistrict: "10",
			province: "2", district: "10", muni: "100",
			want: location.Selector{Province: "2"},
		},
		{
			name:          "district changed",
			scopeProvince: "1", scopeDistrict: "10",
			province: "1", district: "11", muni: "100",
			want: location.Selector{Province: "1", District: "11"},
		},
		{
			name:     "first province on a new form",
			province: "3",
			want:     location.Selector{Province: "3"},
		},
		{
			name:          "province cleared",
			scopeProvince: "1", scopeDistrict: "10",
			district: "10", muni: "100",
			want: location.Selector{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := location.FromScope(tc.scopeProvince, tc.scopeDistrict, tc.province, tc.district, tc.muni)
			assert.Equal(t, tc.want, *got)
		})
	}
}
