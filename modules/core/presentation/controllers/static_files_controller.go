package controllers

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/gaunghar/admin-console/pkg/application"
)

type StaticFilesController struct {
	assets     func() []*hashfs.FS
	production bool
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

// Register serves every registered asset FS under /assets, the first FS
// holding a file wins. Hashed names are cached for good by hashfs.
func (s *StaticFilesController) Register(r *mux.Router) {
	fsInstances := s.assets()
	servers := make([]http.Handler, len(fsInstances))
	for i, fsys := range fsInstances {
		servers[i] = hashfs.FileServer(fsys)
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		for i, fsys := range fsInstances {
			if _, err := fs.Stat(fsys, name); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if !s.production {
				w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			}
			servers[i].ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets", handler))
}

// NewStaticFilesController resolves assets when routes are registered, after
// every module had a chance to add its own.
func NewStaticFilesController(assets func() []*hashfs.FS, production bool) application.Controller {
	return &StaticFilesController{
		assets:     assets,
		production: production,
	}
}
