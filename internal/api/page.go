package api

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/meur/gamecollection/internal/render"
)

// handleCatalogPage renders the catalog view. HTMX requests only get the grid.
func (s *Server) handleCatalogPage(w http.ResponseWriter, r *http.Request) {
	v, err := s.viewFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		templ.Handler(render.Grid(v.Games(), s.opts.AssetBase)).ServeHTTP(w, r)
		return
	}
	templ.Handler(render.Page(render.NewPageData(v, s.opts.AssetBase))).ServeHTTP(w, r)
}
