package mappers

import (
	"github.com/gaunghar/admin-console/modules/core/presentation/viewmodels"
	"github.com/gaunghar/admin-console/pkg/session"
)

func field(label, value string) viewmodels.ProfileField {
	return viewmodels.ProfileField{Label: label, Value: value}
}

// SessionToProfile lays the stored login profile out as the profile card.
func SessionToProfile(s *session.Session) *viewmodels.ProfilePageProps {
	p := s.Profile
	return &viewmodels.ProfilePageProps{
		Name:     s.FullName(),
		UserName: p.UserName,
		Image:    p.UserImage,
		Personal: []viewmodels.ProfileField{
			field("Profile.Fields.UserName", p.UserName),
			field("Profile.Fields.Email", p.Email),
			field("Profile.Fields.Contact", p.Contact),
			field("Profile.Fields.Gender", p.Gender),
			field("Profile.Fields.BirthAD", p.BirthAD),
			field("Profile.Fields.BloodGroup", p.BloodGroup),
			field("Profile.Fields.Profession", p.Profession),
			field("Profile.Fields.Nationality", p.Nationality),
			field("Profile.Fields.PermAddress", p.PermAddress),
			field("Profile.Fields.TempAddress", p.TempAddress),
		},
		Tole: []viewmodels.ProfileField{
			field("Profile.Fields.ToleName", p.ToleName),
			field("Profile.Fields.ToleDistrict", p.ToleDistrict),
			field("Profile.Fields.ToleMunicipality", p.ToleMunicipality),
			field("Profile.Fields.ToleWoda", p.ToleWoda),
			field("Profile.Fields.ToleContact", p.ToleContact),
			field("Profile.Fields.ToleEmail", p.ToleEmail),
			field("Profile.Fields.ToleWebsite", p.ToleWebsite),
		},
	}
}
