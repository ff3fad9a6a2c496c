package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gaunghar/admin-console/modules/tole"
	"github.com/gaunghar/admin-console/modules/tole/services"
	"github.com/gaunghar/admin-console/pkg/itf"
)

const (
	toleEndpoint = "/api/admin/tole"
	refEndpoint  = "/api/admin/ref-value"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func toleRow(id, name, contact, allow, expiry string) map[string]any {
	return map[string]any{
		"toleid":       id,
		"name":         name,
		"address":      name + " Marg",
		"province":     "1",
		"district":     "10",
		"municipality": "100",
		"wadano":       "4",
		"contact":      contact,
		"email":        strings.ToLower(id) + "@example.com",
		"allowapp":     allow,
		"expirydate":   expiry,
	}
}

// fakeToles keeps the tole collection the backend serves so writes show up
// on the next list call.
type fakeToles struct {
	mu   sync.Mutex
	rows []map[string]any
}

func (f *fakeToles) list() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.rows...)
}

func (f *fakeToles) find(id string) []map[string]any {
	for _, row := range f.list() {
		if row["toleid"] == id {
			return []map[string]any{row}
		}
	}
	return []map[string]any{}
}

func (f *fakeToles) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row["toleid"] != id {
			kept = append(kept, row)
		}
	}
	f.rows = kept
}

func newEnv(t *testing.T) (*itf.TestEnvironment, *fakeToles) {
	t.Helper()
	env := itf.NewTestContext().WithModules(tole.NewModule(nil)).Build(t)
	itf.GetService[services.ToleService](env).WithClock(func() time.Time { return fixedNow })

	store := &fakeToles{rows: []map[string]any{
		toleRow("T1", "Shanti Tole", "9800000001", "Y", "2027-01-01"),
		toleRow("T2", "Ganesh Tole", "9800000002", "Y", "2025-12-31"),
		toleRow("T3", "Bhairab Tole", "9800000003", "N", "2027-06-30"),
		toleRow("T4", "Shankar Marg", "9800000004", "Y", ""),
	}}
	env.Backend.On(toleEndpoint, "s", func(map[string]any) (int, any) {
		return http.StatusOK, itf.OK(map[string]any{"ToleLst": store.list()})
	})
	env.Backend.On(toleEndpoint, "si", func(body map[string]any) (int, any) {
		id, _ := body["ToleID"].(string)
		return http.StatusOK, itf.OK(map[string]any{"ToleLst": store.find(id)})
	})
	env.Backend.On(toleEndpoint, "r", func(body map[string]any) (int, any) {
		id, _ := body["ToleID"].(string)
		store.remove(id)
		return http.StatusOK, itf.OK(nil)
	})
	env.Backend.Reply(refEndpoint, "SP", map[string]any{"RefLst": []map[string]any{
		{"ProvinceID": 1, "Province": "Koshi"},
		{"ProvinceID": 2, "Province": "Madhesh"},
	}})
	env.Backend.On(refEndpoint, "SD", func(body map[string]any) (int, any) {
		if body["ProvinceID"] != "1" {
			return http.StatusOK, itf.OK(map[string]any{"RefLst": []map[string]any{}})
		}
		return http.StatusOK, itf.OK(map[string]any{"RefLst": []map[string]any{
			{"DistrictID": 10, "District": "Jhapa"},
		}})
	})
	env.Backend.Reply(refEndpoint, "SM", map[string]any{"RefLst": []map[string]any{
		{"MunicipalityID": 100, "Municipality": "Mechinagar"},
	}})
	return env, store
}

func rowIDs(t *testing.T, resp *itf.Response) []string {
	t.Helper()
	var ids []string
	resp.Doc(t).Find("#tole-table tbody tr[data-id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("data-id")
		ids = append(ids, id)
	})
	return ids
}

func validForm() url.Values {
	return url.Values{
		"ToleID":         {"T9"},
		"Name":           {"Naya Tole"},
		"Address":        {"Birtamod"},
		"ProvinceID":     {"1"},
		"ScopeProvince":  {"1"},
		"DistrictID":     {"10"},
		"ScopeDistrict":  {"10"},
		"MunicipalityID": {"100"},
		"WardNo":         {"5"},
		"Contact":        {"9800000009"},
		"Email":          {"naya@example.com"},
		"ExpiryDate":     {"2027-03-01"},
	}
}

func TestToleController_RequiresSession(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole").Anonymous().Do()

	assert.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "/login?next=%2Ftole", resp.Location())
	assert.Empty(t, env.Backend.Calls(toleEndpoint, "s"))
}

func TestToleController_List(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, []string{"T1", "T2", "T3", "T4"}, rowIDs(t, resp))

	calls := env.Backend.Calls(toleEndpoint, "s")
	require.Len(t, calls, 1)
	assert.Equal(t, "ES25", calls[0].Str("ToleID"))
	assert.Equal(t, "1", calls[0].Str("UserID"))

	badges := resp.Doc(t).Find("#tole-table tbody tr[data-id] .badge")
	require.Equal(t, 4, badges.Length())
	assert.Equal(t, "Active", strings.TrimSpace(badges.Eq(0).Text()))
	assert.Equal(t, "Expired", strings.TrimSpace(badges.Eq(1).Text()))
	assert.Equal(t, "Disabled", strings.TrimSpace(badges.Eq(2).Text()))
	assert.Equal(t, "Active", strings.TrimSpace(badges.Eq(3).Text()))
}

func TestToleController_ListFilters(t *testing.T) {
	env, _ := newEnv(t)

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"search is case insensitive", "?q=SHAN", []string{"T1", "T4"}},
		{"search matches contact", "?q=0000003", []string{"T3"}},
		{"active means app access on", "?status=active", []string{"T1", "T2", "T4"}},
		{"inactive", "?status=inactive", []string{"T3"}},
		{"expired", "?status=expired", []string{"T2"}},
		{"search and status combine", "?q=tole&status=expired", []string{"T2"}},
		{"unknown status shows all", "?status=bogus", []string{"T1", "T2", "T3", "T4"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.GET("/tole" + tc.query).Do()
			require.Equal(t, http.StatusOK, resp.Code())
			assert.Equal(t, tc.want, rowIDs(t, resp))
		})
	}
}

func TestToleController_ListPaging(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole?size=5&page=3").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, []string{"T1", "T2", "T3", "T4"}, rowIDs(t, resp))
}

func TestToleController_ListHugePage(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole?page=3074457345618258603&size=3").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, []string{"T4"}, rowIDs(t, resp))

	resp = env.GET("/tole?page=2&size=9223372036854775807").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Len(t, rowIDs(t, resp), 4)
}

func TestToleController_ListBackendError(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Fail(toleEndpoint, "s", 500, "Database is down")

	resp := env.GET("/tole").Do()

	require.Equal(t, http.StatusOK, resp.Code())
	doc := resp.Doc(t)
	assert.Contains(t, doc.Find(".alert-error").Text(), "Database is down")
	assert.Contains(t, doc.Find("#tole-table tbody").Text(), "No toles found")
}

func TestToleController_NewForm(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole/new").Do()
	require.Equal(t, http.StatusOK, resp.Code())

	doc := resp.Doc(t)
	assert.Equal(t, 1, doc.Find("#tole-form").Length())
	assert.Equal(t, 3, doc.Find("select#ProvinceID option").Length())
	_, disabled := doc.Find("select#DistrictID").Attr("disabled")
	assert.True(t, disabled)
	assert.Empty(t, env.Backend.Calls(refEndpoint, "SD"))
}

func TestToleController_CreateValidation(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.POST("/tole", url.Values{"Name": {"  "}, "Email": {"not-an-email"}}).Do()

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code())
	errs := resp.Doc(t).Find(".field-error").Text()
	assert.Contains(t, errs, "Tole ID is required")
	assert.Contains(t, errs, "Name is required")
	assert.Contains(t, errs, "Province is required")
	assert.Empty(t, env.Backend.Calls(toleEndpoint, "i"))
}

func TestToleController_Create(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Reply(toleEndpoint, "i", nil)

	resp := env.POST("/tole", validForm()).Do()

	require.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "/tole", resp.Location())
	assert.Equal(t, "Tole created successfully", resp.Flash(t, "success"))

	calls := env.Backend.Calls(toleEndpoint, "i")
	require.Len(t, calls, 1)
	body := calls[0].Body
	assert.Equal(t, "T9", body["ToleId"])
	assert.Equal(t, "Naya Tole", body["Name"])
	assert.EqualValues(t, 1, body["ProvinceNo"])
	assert.EqualValues(t, 10, body["DistrictID"])
	assert.EqualValues(t, 100, body["MunicipalityID"])
	assert.EqualValues(t, 5, body["WadaNo"])
	assert.Equal(t, "Y", body["AllowApp"])
	assert.Equal(t, "2026-03-01", body["RegDate"])
	assert.Equal(t, "2027-03-01", body["ExpiryDate"])
	assert.Equal(t, "1", body["UserID"])
}

func TestToleController_CreateWithLogo(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Reply(toleEndpoint, "i", nil)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

	resp := env.Multipart(t, "/tole", validForm(), itf.File{
		Field: "Logo", Name: "logo.png", Content: png, MimeType: "image/png",
	}).Do()

	require.Equal(t, http.StatusFound, resp.Code())
	calls := env.Backend.Calls(toleEndpoint, "i")
	require.Len(t, calls, 1)
	logo := calls[0].Str("Logo")
	assert.NotEmpty(t, logo)
	assert.False(t, strings.HasPrefix(logo, "data:"))
}

func TestToleController_CreateRejectsNonImage(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.Multipart(t, "/tole", validForm(), itf.File{
		Field: "Logo", Name: "notes.txt", Content: []byte("plain text, not a picture"), MimeType: "text/plain",
	}).Do()

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code())
	assert.Contains(t, resp.Doc(t).Find(".field-error").Text(), "Please select an image file")
	assert.Empty(t, env.Backend.Calls(toleEndpoint, "i"))
}

func TestToleController_CreateDropsStaleDistrict(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Reply(toleEndpoint, "i", nil)

	form := validForm()
	form.Set("ProvinceID", "2")

	resp := env.POST("/tole", form).Do()

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code())
	doc := resp.Doc(t)
	assert.Contains(t, doc.Find("#location-fields .field-error").Text(), "District is required")
	assert.Equal(t, 0, doc.Find("select#DistrictID option[selected]").Length())
	assert.Equal(t, 0, doc.Find("select#MunicipalityID option[selected]").Length())
	scope, _ := doc.Find("input[name=ScopeProvince]").Attr("value")
	assert.Equal(t, "2", scope)
	assert.Empty(t, env.Backend.Calls(toleEndpoint, "i"))
}

func TestToleController_CreateBackendRejects(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Fail(toleEndpoint, "i", 409, "Tole ID already exists")

	resp := env.POST("/tole", validForm()).Do()

	require.Equal(t, http.StatusOK, resp.Code())
	doc := resp.Doc(t)
	assert.Contains(t, doc.Find(".alert-error").Text(), "Tole ID already exists")
	name, _ := doc.Find("input#Name").Attr("value")
	assert.Equal(t, "Naya Tole", name)
}

func TestToleController_Update(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Reply(toleEndpoint, "U", nil)

	form := validForm()
	form.Set("ToleID", "ignored")
	form.Set("Name", "Shanti Tole Renamed")

	resp := env.POST("/tole/T1", form).Do()

	require.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "Tole updated successfully", resp.Flash(t, "success"))
	calls := env.Backend.Calls(toleEndpoint, "U")
	require.Len(t, calls, 1)
	assert.Equal(t, "T1", calls[0].Str("ToleId"))
	assert.Equal(t, "Shanti Tole Renamed", calls[0].Str("Name"))
}

func TestToleController_LocationFields(t *testing.T) {
	env, _ := newEnv(t)

	t.Run("province picked", func(t *testing.T) {
		resp := env.GET("/tole/locations/fields?ProvinceID=1&ScopeProvince=").Do()
		require.Equal(t, http.StatusOK, resp.Code())

		doc := resp.Doc(t)
		assert.Equal(t, 1, doc.Find("#location-fields").Length())
		assert.Equal(t, "Jhapa", strings.TrimSpace(doc.Find("select#DistrictID option[value='10']").Text()))
		_, disabled := doc.Find("select#MunicipalityID").Attr("disabled")
		assert.True(t, disabled)
	})

	t.Run("province changed drops district", func(t *testing.T) {
		resp := env.GET("/tole/locations/fields?ProvinceID=2&ScopeProvince=1&DistrictID=10&ScopeDistrict=10&MunicipalityID=100").Do()
		require.Equal(t, http.StatusOK, resp.Code())

		doc := resp.Doc(t)
		assert.Equal(t, 0, doc.Find("select#DistrictID option[value='10']").Length())
		assert.Equal(t, 0, doc.Find("select#MunicipalityID option[value='100']").Length())
	})
}

func TestToleController_View(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole/T1").Do()

	require.Equal(t, http.StatusOK, resp.Code())
	assert.Contains(t, resp.Body(), "Shanti Tole")
	assert.Contains(t, resp.Body(), "Koshi")
	calls := env.Backend.Calls(toleEndpoint, "si")
	require.Len(t, calls, 1)
	assert.Equal(t, "T1", calls[0].Str("ToleID"))
}

func TestToleController_ViewUnknown(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole/NOPE").Do()

	assert.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "/tole", resp.Location())
	assert.Equal(t, "Tole not found", resp.Flash(t, "error"))
}

func TestToleController_Confirm(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole/T1/confirm?action=delete").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	doc := resp.Doc(t)
	assert.Contains(t, doc.Text(), "Are you sure you want to delete Shanti Tole?")
	action, _ := doc.Find("article.confirm form").Attr("action")
	assert.Equal(t, "/tole/T1/delete", action)

	resp = env.GET("/tole/T1/confirm?action=explode").Do()
	assert.Equal(t, http.StatusBadRequest, resp.Code())

	assert.Empty(t, env.Backend.Calls(toleEndpoint, "r"))
}

func TestToleController_DeleteThenReload(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.POST("/tole/T2/delete", nil).Do()
	require.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "/tole", resp.Location())

	calls := env.Backend.Calls(toleEndpoint, "r")
	require.Len(t, calls, 1)
	assert.Equal(t, "T2", calls[0].Str("ToleID"))

	flash := resp.Cookie("success")
	require.NotNil(t, flash)
	list := env.GET("/tole").Cookie(flash).Do()
	require.Equal(t, http.StatusOK, list.Code())
	assert.Equal(t, []string{"T1", "T3", "T4"}, rowIDs(t, list))
	assert.Contains(t, list.Doc(t).Find(".alert-success").Text(), "Tole deleted successfully")
}

func TestToleController_DeleteFailure(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Fail(toleEndpoint, "r", 400, "Tole has members")

	resp := env.POST("/tole/T1/delete", nil).HTMX().Do()

	assert.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, "/tole", resp.Location())
	assert.Equal(t, "Tole has members", resp.Flash(t, "error"))
}

func TestToleController_SetAllowApp(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Reply(toleEndpoint, "ai", nil)

	resp := env.POST("/tole/T1/allow-app", url.Values{"AllowApp": {"n"}}).Do()
	require.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "App access disabled", resp.Flash(t, "success"))

	calls := env.Backend.Calls(toleEndpoint, "ai")
	require.Len(t, calls, 1)
	assert.Equal(t, "T1", calls[0].Str("ToleID"))
	assert.Equal(t, "N", calls[0].Str("AllowApp"))

	resp = env.POST("/tole/T1/allow-app", url.Values{"AllowApp": {"maybe"}}).Do()
	assert.Equal(t, http.StatusBadRequest, resp.Code())
	assert.Len(t, env.Backend.Calls(toleEndpoint, "ai"), 1)
}

func TestToleController_Extend(t *testing.T) {
	env, _ := newEnv(t)
	env.Backend.Reply(toleEndpoint, "ex", nil)

	for _, date := range []string{"2026-02-01", "2026-03-01", "not-a-date"} {
		resp := env.POST("/tole/T1/extend", url.Values{"ExpiryDate": {date}, "Name": {"Shanti Tole"}}).Do()
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code(), date)
		assert.Contains(t, resp.Doc(t).Find(".field-error").Text(), "Expiry date must be later than today", date)
	}
	assert.Empty(t, env.Backend.Calls(toleEndpoint, "ex"))

	resp := env.POST("/tole/T1/extend", url.Values{"ExpiryDate": {"2026-03-02"}}).Do()
	require.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "Expiry date extended", resp.Flash(t, "success"))

	calls := env.Backend.Calls(toleEndpoint, "ex")
	require.Len(t, calls, 1)
	assert.Equal(t, "T1", calls[0].Str("ToleID"))
	assert.Equal(t, "2026-03-02", calls[0].Str("ExpiryDate"))
}

func TestToleController_ExtendForm(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole/T2/extend").Do()

	require.Equal(t, http.StatusOK, resp.Code())
	doc := resp.Doc(t)
	current, _ := doc.Find("input[name=Current]").Attr("value")
	assert.Equal(t, "2025-12-31", current)
	action, _ := doc.Find("article.detail form").Attr("action")
	assert.Equal(t, "/tole/T2/extend", action)
}

func TestToleController_Export(t *testing.T) {
	env, _ := newEnv(t)

	resp := env.GET("/tole/export?status=expired").Do()

	require.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "toles-20260301.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(resp.Recorder.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Toles")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "T2", rows[1][0])
	assert.Equal(t, "Expired", rows[1][len(rows[1])-1])
}

func TestLocationAPIController(t *testing.T) {
	env, _ := newEnv(t)

	decode := func(t *testing.T, resp *itf.Response) []map[string]string {
		t.Helper()
		var out struct {
			Data []map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(resp.Body()), &out))
		return out.Data
	}

	resp := env.GET("/tole/locations/provinces").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, []map[string]string{{"id": "1", "name": "Koshi"}, {"id": "2", "name": "Madhesh"}}, decode(t, resp))

	resp = env.GET("/tole/locations/districts?province=1").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Equal(t, []map[string]string{{"id": "10", "name": "Jhapa"}}, decode(t, resp))

	resp = env.GET("/tole/locations/municipalities?province=1").Do()
	require.Equal(t, http.StatusOK, resp.Code())
	assert.Empty(t, decode(t, resp))
	assert.Empty(t, env.Backend.Calls(refEndpoint, "SM"))

	env.Backend.Fail(refEndpoint, "SP", 500, "Lookup failed")
	resp = env.GET("/tole/locations/provinces").Do()
	assert.Equal(t, http.StatusBadGateway, resp.Code())
	assert.Contains(t, resp.Body(), "Lookup failed")
}
