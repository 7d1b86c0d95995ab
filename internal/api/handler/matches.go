package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cricbase/cricbase-data/internal/api/respond"
	"github.com/cricbase/cricbase-data/internal/cache"
)

// GetMatch returns pivoted metadata for one match.
// @Summary Get match metadata
// @Description Returns the pivoted metadata record for a match. Response is the raw metadata JSON stored at ingest time.
// @Tags matches
// @Produce json
// @Param matchID path string true "Cricsheet match identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{matchID} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	h.serveMatchJSON(w, r, "match_by_id", "match:", cache.TTLMatch, "Match not found")
}

// GetMatchDeliveries returns the reshaped ball-by-ball records for one match.
// @Summary Get match deliveries
// @Description Returns every delivery of a match with running totals, ordered by innings, over, and ball.
// @Tags matches
// @Produce json
// @Param matchID path string true "Cricsheet match identifier"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{matchID}/deliveries [get]
func (h *Handler) GetMatchDeliveries(w http.ResponseWriter, r *http.Request) {
	h.serveMatchJSON(w, r, "deliveries_by_match", "deliveries:", cache.TTLDeliveries, "No deliveries found for match")
}

// GetMatchPlayers returns the squad listings for one match.
// @Summary Get match squads
// @Description Returns the (team, player) squad rows for a match.
// @Tags matches
// @Produce json
// @Param matchID path string true "Cricsheet match identifier"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{matchID}/players [get]
func (h *Handler) GetMatchPlayers(w http.ResponseWriter, r *http.Request) {
	h.serveMatchJSON(w, r, "players_by_match", "squads:", cache.TTLMatch, "No squads found for match")
}

// serveMatchJSON runs one single-argument prepared statement keyed by
// match ID and serves the raw JSON result with cache and ETag handling.
func (h *Handler) serveMatchJSON(w http.ResponseWriter, r *http.Request, stmt, keyPrefix string, ttl time.Duration, notFound string) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_MATCH_ID", "Match ID is required")
		return
	}

	cacheKey := keyPrefix + matchID
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	var raw []byte
	err := h.pool.QueryRow(r.Context(), stmt, matchID).Scan(&raw)
	if err != nil || raw == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", notFound)
		return
	}

	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}
