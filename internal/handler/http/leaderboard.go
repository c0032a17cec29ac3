package http

import (
	"net/http"

	"fanbase/internal/logger"
	"fanbase/internal/utils"
	"fanbase/models"
)

// topPlayers handles GET /top-players: up to five players ranked by the
// number of users that favorited them, serialized as a bare JSON array.
func (h *Handler) topPlayers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rows, err := h.services.LeaderboardService.TopPlayers(r.Context())
	if err != nil {
		log.Err(err).Msg("error loading player leaderboard")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, leaderboardEntries(rows), http.StatusOK)
}

// topTeams handles GET /top-teams, mirroring topPlayers.
func (h *Handler) topTeams(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rows, err := h.services.LeaderboardService.TopTeams(r.Context())
	if err != nil {
		log.Err(err).Msg("error loading team leaderboard")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, leaderboardEntries(rows), http.StatusOK)
}

// home handles GET /: a plain-text liveness check.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("hey"))
}
