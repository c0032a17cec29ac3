package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fanbase/internal/logger"
	"fanbase/internal/store"
	"fanbase/internal/utils"
	"fanbase/models"
)

// nullStats is the stats payload used when the external season-average
// source is unavailable or returns garbage. The endpoint degrades rather
// than fails.
var nullStats = json.RawMessage("null")

// getPlayer handles GET /players/{id}: the public player card with an
// optional season-average stats block fetched from the external source.
func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	playerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("error parsing player id path parameter")
		utils.WriteJSON(w, models.MessageResponse{Message: "Player does not exist"}, http.StatusNotFound)
		return
	}

	ctx := r.Context()
	player, err := h.services.CatalogService.GetPlayer(ctx, playerID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPlayerNotFound):
			log.Err(err).Int64("player_id", playerID).Msg("player not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Player does not exist"}, http.StatusNotFound)
		default:
			log.Err(err).Int64("player_id", playerID).Msg("error loading player")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	stats := nullStats
	if fetched, err := h.stats.SeasonAverages(ctx, player.PlayerID); err != nil {
		log.Warn().Err(err).Int64("player_id", player.PlayerID).Msg("season averages unavailable")
	} else {
		stats = fetched
	}

	utils.WriteJSON(w, models.PlayerDetailResponse{
		Player:  playerView(player),
		Picture: encodePicture(player.Picture),
		Stats:   stats,
	}, http.StatusOK)
}

// searchPlayers handles GET /players/search?name=... with a case-insensitive
// substring match over player names.
func (h *Handler) searchPlayers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteJSON(w, models.MessageResponse{Message: "No search query provided"}, http.StatusBadRequest)
		return
	}

	players, err := h.services.CatalogService.SearchPlayers(r.Context(), name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("error searching players")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	if len(players) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Message: "No players found matching the search criteria"}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.SearchPlayersResponse{Players: playerDirectoryEntries(players)}, http.StatusOK)
}
