package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/cricbase/cricbase-data/internal/api/respond"
)

// GetPlayer returns one player profile row.
// @Summary Get player profile
// @Description Returns the profile row for a player, looked up by exact name.
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{name} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var playerName string
	var country *string
	err := h.pool.QueryRow(r.Context(), "player_lookup", name).Scan(&playerName, &country)
	if errors.Is(err, pgx.ErrNoRows) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Player not found")
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED", "Player lookup failed")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    playerName,
		"country": country,
	})
}
