package dtos

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/gaunghar/admin-console/pkg/intl"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.MustParseMessageFileBytes([]byte(`{
		"ValidationErrors": {"required": "{{.Field}} is required", "eqfield": "{{.Field}} does not match"},
		"Login": {"Fields": {"UserName": "Username", "Password": "Password"}},
		"Profile": {"Password": {"OldPwd": "Old password", "NewPwd": "New password", "ConfirmPwd": "Confirm password"}}
	}`), "en.json")
	return intl.WithLocalizer(context.Background(), i18n.NewLocalizer(bundle, "en"))
}

func TestLoginDTO_Ok(t *testing.T) {
	ctx := testContext(t)

	errs, ok := (&LoginDTO{UserName: "  "}).Ok(ctx)
	assert.False(t, ok)
	assert.Equal(t, "Username is required", errs["UserName"])
	assert.Equal(t, "Password is required", errs["Password"])

	_, ok = (&LoginDTO{UserName: "admin", Password: "secret"}).Ok(ctx)
	assert.True(t, ok)
}

func TestChangePasswordDTO_Ok(t *testing.T) {
	ctx := testContext(t)

	cases := []struct {
		name  string
		dto   ChangePasswordDTO
		field string
		want  string
	}{
		{name: "missing old", dto: ChangePasswordDTO{NewPwd: "a", ConfirmPwd: "a"}, field: "OldPwd", want: "Old password is required"},
		{name: "mismatch", dto: ChangePasswordDTO{OldPwd: "o", NewPwd: "a", ConfirmPwd: "b"}, field: "ConfirmPwd", want: "Confirm password does not match"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs, ok := tc.dto.Ok(ctx)
			assert.False(t, ok)
			assert.Equal(t, tc.want, errs[tc.field])
		})
	}

	_, ok := (&ChangePasswordDTO{OldPwd: "o", NewPwd: "n", ConfirmPwd: "n"}).Ok(ctx)
	assert.True(t, ok)
}
