package persistence

import (
	"context"

	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/composables"
)

const (
	toleEndpoint     = "/api/admin/tole"
	refValueEndpoint = "/api/admin/ref-value"
)

const (
	flagList         backend.Flag = "s"
	flagInfo         backend.Flag = "si"
	flagInsert       backend.Flag = "i"
	flagUpdate       backend.Flag = "U"
	flagAllowApp     backend.Flag = "ai"
	flagRemove       backend.Flag = "r"
	flagExtend       backend.Flag = "ex"
	flagProvinces    backend.Flag = "SP"
	flagDistricts    backend.Flag = "SD"
	flagMunicipality backend.Flag = "SM"
)

// identity is the administrator every backend call is made on behalf of.
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

type listToles struct {
	identity
}

func (listToles) Endpoint() string   { return toleEndpoint }
func (listToles) Flag() backend.Flag { return flagList }

type toleInfo struct {
	ToleID string `json:"ToleID"`
	UserID string `json:"UserID"`
}

func (toleInfo) Endpoint() string   { return toleEndpoint }
func (toleInfo) Flag() backend.Flag { return flagInfo }

// saveTole is the create and update payload. The backend spells ToleId with
// a lower-case d here only.
type saveTole struct {
	flag           backend.Flag
	ToleID         string `json:"ToleId"`
	Name           string `json:"Name"`
	Address        string `json:"Address"`
	ProvinceNo     int    `json:"ProvinceNo"`
	DistrictID     int    `json:"DistrictID"`
	MunicipalityID int    `json:"MunicipalityID"`
	WadaNo         int    `json:"WadaNo"`
	Contact        string `json:"Contact"`
	Email          string `json:"Email"`
	Logo           string `json:"Logo"`
	About          string `json:"About"`
	Website        string `json:"Website"`
	Fb             string `json:"Fb"`
	RegDate        string `json:"RegDate"`
	GoogLat        string `json:"GoogLat"`
	GoogLong       string `json:"GoogLong"`
	AllowApp       string `json:"AllowApp"`
	ExpiryDate     string `json:"ExpiryDate"`
	UserID         string `json:"UserID"`
}

func (saveTole) Endpoint() string     { return toleEndpoint }
func (o saveTole) Flag() backend.Flag { return o.flag }

type setAllowApp struct {
	ToleID   string `json:"ToleID"`
	UserID   string `json:"UserID"`
	AllowApp string `json:"AllowApp"`
}

func (setAllowApp) Endpoint() string   { return toleEndpoint }
func (setAllowApp) Flag() backend.Flag { return flagAllowApp }

type removeTole struct {
	ToleID string `json:"ToleID"`
	UserID string `json:"UserID"`
}

func (removeTole) Endpoint() string   { return toleEndpoint }
func (removeTole) Flag() backend.Flag { return flagRemove }

type extendExpiry struct {
	ToleID     string `json:"ToleID"`
	UserID     string `json:"UserID"`
	ExpiryDate string `json:"ExpiryDate"`
}

func (extendExpiry) Endpoint() string   { return toleEndpoint }
func (extendExpiry) Flag() backend.Flag { return flagExtend }

type refLookup struct {
	flag       backend.Flag
	ToleID     string `json:"ToleID"`
	UserID     string `json:"UserID"`
	ProvinceID string `json:"ProvinceID,omitempty"`
	DistrictID string `json:"DistrictID,omitempty"`
}

func (refLookup) Endpoint() string     { return refValueEndpoint }
func (o refLookup) Flag() backend.Flag { return o.flag }
