package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/htmx"
	"github.com/gaunghar/admin-console/pkg/shared"
	"github.com/gaunghar/admin-console/pkg/views"
)

const (
	flashSuccess   = "success"
	flashError     = "error"
	flashErrorsMap = "errorsMap"
	homePath       = "/dashboard"
)

func useNotice(w http.ResponseWriter, r *http.Request) views.Notice {
	success, _ := composables.UseFlash(w, r, flashSuccess)
	failure, _ := composables.UseFlash(w, r, flashError)
	return views.Notice{Success: string(success), Error: string(failure)}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, to, name, msg string) {
	shared.SetFlash(w, name, []byte(msg))
	htmx.Redirect(w, r, to)
}

// safeNext returns next when it is a local path, fallback otherwise.
func safeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}
