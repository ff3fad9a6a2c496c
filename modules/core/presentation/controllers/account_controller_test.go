package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaunghar/admin-console/pkg/itf"
)

const changePasswordEndpoint = "/api/change-pwd"

func TestAccountController_Profile(t *testing.T) {
	env := itf.NewTestContext().Build(t)

	resp := env.GET("/profile").Do()
	require.Equal(t, http.StatusOK, resp.Code())

	doc := resp.Doc(t)
	assert.Equal(t, "Sita Sharma", strings.TrimSpace(doc.Find(".profile-header h2").Text()))
	assert.Contains(t, doc.Find("dd").Text(), "Shanti Tole")
	assert.Equal(t, 3, doc.Find("#change-password input[type=password]").Length())
}

func TestAccountController_ChangePasswordMismatch(t *testing.T) {
	env := itf.NewTestContext().Build(t)

	resp := env.POST("/profile/password", url.Values{
		"OldPwd":     {"old"},
		"NewPwd":     {"new-1"},
		"ConfirmPwd": {"new-2"},
	}).Do()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code())
	assert.Contains(t, resp.Doc(t).Find(".field-error").Text(), "Confirm password does not match")
	assert.Empty(t, env.Backend.Calls(changePasswordEndpoint, ""))
}

func TestAccountController_ChangePasswordSuccess(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	env.Backend.Reply(changePasswordEndpoint, "", nil)

	resp := env.POST("/profile/password", url.Values{
		"OldPwd":     {"old"},
		"NewPwd":     {"new"},
		"ConfirmPwd": {"new"},
	}).Do()

	require.Equal(t, http.StatusFound, resp.Code())
	assert.Equal(t, "/profile", resp.Location())
	assert.Equal(t, "Password changed successfully", resp.Flash(t, "success"))

	calls := env.Backend.Calls(changePasswordEndpoint, "")
	require.Len(t, calls, 1)
	assert.Equal(t, "1", calls[0].Str("UserID"))
	assert.Equal(t, "ES25", calls[0].Str("ToleID"))
	assert.Equal(t, "old", calls[0].Str("OldPwd"))
	assert.Equal(t, "new", calls[0].Str("NewPwd"))
}

func TestAccountController_ChangePasswordServerMessage(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	env.Backend.Fail(changePasswordEndpoint, "", 400, "Old password is incorrect")

	resp := env.POST("/profile/password", url.Values{
		"OldPwd":     {"bad"},
		"NewPwd":     {"new"},
		"ConfirmPwd": {"new"},
	}).Do()

	require.Equal(t, http.StatusOK, resp.Code())
	assert.Contains(t, resp.Doc(t).Find(".alert-error").Text(), "Old password is incorrect")
}
