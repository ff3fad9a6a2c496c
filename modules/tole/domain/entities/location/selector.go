package location

// Selector is the state of the three dependent location selects.
//
// It is rebuilt on every request from the submitted form. Superseded lookups
// never reach it: the form fragment is fetched with hx-sync replace, which
// aborts the earlier request, and the aborted request's context cancels its
// backend calls.
type Selector struct {
	Province     string
	District     string
	Municipality string

	Provinces      []Option
	Districts      []Option
	Municipalities []Option
}

// FromScope rebuilds the selection the option lists were loaded for and
// replays the submitted values on top of it. A changed province drops the
// submitted district and municipality; a changed district drops the
// submitted municipality.
func FromScope(scopeProvince, scopeDistrict, province, district, municipality string) *Selector {
	s := &Selector{Province: scopeProvince, District: scopeDistrict}
	switch {
	case province != s.Province:
		s.SelectProvince(province)
	case district != s.District:
		s.SelectDistrict(district)
	default:
		s.SelectMunicipality(municipality)
	}
	return s
}

// SelectProvince clears the district and municipality levels.
func (s *Selector) SelectProvince(id string) {
	s.Province = id
	s.District = ""
	s.Municipality = ""
	s.Districts = nil
	s.Municipalities = nil
}

// SelectDistrict clears the municipality level.
func (s *Selector) SelectDistrict(id string) {
	s.District = id
	s.Municipality = ""
	s.Municipalities = nil
}

func (s *Selector) SelectMunicipality(id string) {
	s.Municipality = id
}

func (s *Selector) DistrictEnabled() bool {
	return s.Province != ""
}

func (s *Selector) MunicipalityEnabled() bool {
	return s.District != ""
}

func nameOf(opts []Option, id string) string {
	for _, o := range opts {
		if o.ID == id {
			return o.Name
		}
	}
	return ""
}

// Names returns the display names of the current selection, empty where unknown.
func (s *Selector) Names() (province, district, municipality string) {
	return nameOf(s.Provinces, s.Province), nameOf(s.Districts, s.District), nameOf(s.Municipalities, s.Municipality)
}
