package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meur/gamecollection/internal/catalog"
	"github.com/meur/gamecollection/internal/models"
)

// viewFromQuery builds a view at the default selection and applies the
// players and platform query parameters on top of it
func (s *Server) viewFromQuery(r *http.Request) (*catalog.View, error) {
	v := catalog.NewView(s.catalog)
	q := r.URL.Query()

	if raw := q.Get("players"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("players must be a positive integer")
		}
		v.SelectPlayerCount(n)
	}
	if raw := q.Get("platform"); raw != "" {
		p, err := models.ParsePlatform(raw)
		if err != nil {
			return nil, err
		}
		v.SelectPlatform(p)
	}
	return v, nil
}

// handleGetGames returns the games visible for the requested selection
func (s *Server) handleGetGames(w http.ResponseWriter, r *http.Request) {
	v, err := s.viewFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	games := v.Games()
	respondJSON(w, http.StatusOK, map[string]any{
		"selection":   v.Selection(),
		"games":       games,
		"total_count": len(games),
	})
}

// handleGetGame returns a single game by ID
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	game, ok := s.catalog.Game(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Game not found")
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// handleGetFilters returns the filter controls the page offers
func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.Filters())
}
