package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cricbase/cricbase-data/internal/api/respond"
	"github.com/cricbase/cricbase-data/internal/cache"
	"github.com/cricbase/cricbase-data/internal/cricclean"
)

var validMatchTypes = map[string]bool{"test": true, "odi": true, "t20": true}
var validSexes = map[string]bool{"men": true, "women": true}

// GetStats returns cleaned player statistics for one dataset.
// @Summary Get player statistics
// @Description Returns cleaned player statistics rows for a match type, sex, activity, and view. Response is raw JSON aggregated in Postgres.
// @Tags stats
// @Produce json
// @Param activity path string true "Activity" Enums(batting, bowling, fielding)
// @Param matchtype query string true "Match type" Enums(test, odi, t20)
// @Param sex query string true "Sex" Enums(men, women)
// @Param view query string false "View (defaults to career)" Enums(career, innings)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/stats/{activity} [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	activity, err := cricclean.ParseActivity(chi.URLParam(r, "activity"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ACTIVITY",
			"Activity must be 'batting', 'bowling', or 'fielding'")
		return
	}

	matchType := r.URL.Query().Get("matchtype")
	if !validMatchTypes[matchType] {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_MATCHTYPE",
			"matchtype must be 'test', 'odi', or 't20'")
		return
	}
	sex := r.URL.Query().Get("sex")
	if !validSexes[sex] {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_SEX",
			"sex must be 'men' or 'women'")
		return
	}

	view := cricclean.Career
	if v := r.URL.Query().Get("view"); v != "" {
		if view, err = cricclean.ParseView(v); err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_VIEW",
				"view must be 'career' or 'innings'")
			return
		}
	}

	ttl := cache.TTLStats
	cacheKey := fmt.Sprintf("stats:%s:%s:%s:%s", matchType, sex, activity, view)

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	var raw []byte
	err = h.pool.QueryRow(r.Context(), "stats_by_activity",
		matchType, sex, string(activity), string(view)).Scan(&raw)
	if err != nil || raw == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("No %s %s stats for %s %s", activity, view, sex, matchType))
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}
