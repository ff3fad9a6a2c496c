package main

import (
	"bytes"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/gaunghar/admin-console/pkg/itf"
)

const (
	loginEndpoint = "/api/login"
	toleEndpoint  = "/api/admin/tole"
	refEndpoint   = "/api/admin/ref-value"
)

func newBackend(t *testing.T) *itf.FakeBackend {
	t.Helper()
	fake := itf.NewFakeBackend(t)
	fake.Reply(loginEndpoint, "", map[string]any{"loginLst": []map[string]any{
		{"UserID": 7, "ToleID": "ES25", "UserName": "admin"},
	}})
	fake.Reply(refEndpoint, "SP", map[string]any{"RefLst": []map[string]any{
		{"ProvinceID": 1, "Province": "Koshi"},
		{"ProvinceID": 2, "Province": "Madhesh"},
	}})
	fake.On(refEndpoint, "SD", func(body map[string]any) (int, any) {
		if body["ProvinceID"] != "1" {
			return http.StatusOK, itf.OK(map[string]any{"RefLst": []map[string]any{}})
		}
		return http.StatusOK, itf.OK(map[string]any{"RefLst": []map[string]any{
			{"DistrictID": 10, "District": "Jhapa"},
		}})
	})
	fake.Reply(refEndpoint, "SM", map[string]any{"RefLst": []map[string]any{
		{"MunicipalityID": 100, "Municipality": "Mechinagar"},
	}})
	fake.Reply(toleEndpoint, "s", map[string]any{"ToleLst": []map[string]any{
		{"toleid": "T1", "name": "Shanti Tole", "contact": "9800000001", "allowapp": "Y", "expirydate": "2099-01-01"},
		{"toleid": "T2", "name": "Bhairab Tole", "contact": "9800000002", "allowapp": "N"},
		{"toleid": "T3", "name": "Ganesh Tole", "contact": "9800000003", "allowapp": "Y", "expirydate": "2001-01-01"},
	}})
	return fake
}

func run(t *testing.T, fake *itf.FakeBackend, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--backend", fake.URL(), "--user", "admin", "--password", "secret"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRefs(t *testing.T) {
	fake := newBackend(t)

	out, err := run(t, fake, "refs")
	require.NoError(t, err)

	var got refsOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Provinces, 2)
	assert.Equal(t, "Koshi", got.Provinces[0].Name)
	require.Len(t, got.Provinces[0].Children, 1)
	assert.Equal(t, "Jhapa", got.Provinces[0].Children[0].Name)
	require.Len(t, got.Provinces[0].Children[0].Children, 1)
	assert.Equal(t, "100", got.Provinces[0].Children[0].Children[0].ID)
	assert.Empty(t, got.Provinces[1].Children)

	logins := fake.Calls(loginEndpoint, "")
	require.Len(t, logins, 1)
	assert.Equal(t, "admin", logins[0].Str("UserName"))
	assert.Len(t, fake.Calls(refEndpoint, "SD"), 2)
}

func TestRefs_SingleProvinceWithoutMunicipalities(t *testing.T) {
	fake := newBackend(t)

	out, err := run(t, fake, "refs", "--province", "1", "--municipalities=false")
	require.NoError(t, err)

	var got refsOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Provinces, 1)
	assert.Empty(t, got.Provinces[0].Children[0].Children)
	assert.Empty(t, fake.Calls(refEndpoint, "SM"))
}

func TestRefs_LoginRejected(t *testing.T) {
	fake := newBackend(t)
	fake.Fail(loginEndpoint, "", 401, "Invalid user")

	_, err := run(t, fake, "refs")
	require.Error(t, err)
	assert.Empty(t, fake.Calls(refEndpoint, "SP"))
}

func TestExport(t *testing.T) {
	cases := []struct {
		name   string
		status string
		want   int
	}{
		{name: "all", status: "", want: 3},
		{name: "inactive", status: "inactive", want: 1},
		{name: "expired", status: "expired", want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := newBackend(t)
			path := filepath.Join(t.TempDir(), "toles.xlsx")

			args := []string{"export", "--out", path}
			if tc.status != "" {
				args = append(args, "--status", tc.status)
			}
			_, err := run(t, fake, args...)
			require.NoError(t, err)

			f, err := excelize.OpenFile(path)
			require.NoError(t, err)
			defer f.Close()
			rows, err := f.GetRows("Toles")
			require.NoError(t, err)
			assert.Len(t, rows, tc.want+1)
			assert.Equal(t, "ES25", fake.Calls(toleEndpoint, "s")[0].Str("ToleID"))
		})
	}
}

func TestExport_InvalidStatus(t *testing.T) {
	fake := newBackend(t)

	_, err := run(t, fake, "export", "--out", filepath.Join(t.TempDir(), "x.xlsx"), "--status", "archived")
	require.Error(t, err)
	assert.Empty(t, fake.AllCalls())
}
