package persistence

import "github.com/gaunghar/admin-console/pkg/backend"

type toleRow struct {
	ToleID       backend.Text `json:"toleid"`
	Name         backend.Text `json:"name"`
	Address      backend.Text `json:"address"`
	Province     backend.Text `json:"province"`
	District     backend.Text `json:"district"`
	Municipality backend.Text `json:"municipality"`
	WadaNo       backend.Text `json:"wadano"`
	Contact      backend.Text `json:"contact"`
	Email        backend.Text `json:"email"`
	Logo         backend.Text `json:"logo"`
	About        backend.Text `json:"about"`
	Website      backend.Text `json:"website"`
	Fb           backend.Text `json:"fb"`
	RegDate      backend.Text `json:"regdate"`
	GoogLat      backend.Text `json:"googlat"`
	GoogLong     backend.Text `json:"googlong"`
	AllowApp     backend.Text `json:"allowapp"`
	ExpiryDate   backend.Text `json:"expirydate"`
	CreatedDate  backend.Text `json:"createddate"`
}

type toleListResponse struct {
	backend.Status
	ToleLst []toleRow `json:"ToleLst"`
}

// refRow covers the three shapes RefLst entries come in.
type refRow struct {
	ProvinceID     backend.Text `json:"ProvinceID"`
	Province       backend.Text `json:"Province"`
	DistrictID     backend.Text `json:"DistrictID"`
	District       backend.Text `json:"District"`
	MunicipalityID backend.Text `json:"MunicipalityID"`
	Municipality   backend.Text `json:"Municipality"`
}

type refResponse struct {
	backend.Status
	RefLst []refRow `json:"RefLst"`
}
