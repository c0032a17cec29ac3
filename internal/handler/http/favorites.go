package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fanbase/internal/logger"
	"fanbase/internal/service"
	"fanbase/internal/store"
	"fanbase/internal/utils"
	"fanbase/models"
)

// Favorites endpoints. All four share the same shape: ownership check,
// typed body decode, then a single FavoritesService call whose sentinel
// errors map one-to-one onto response statuses. The service performs its
// checks in a fixed order (ID presence, user existence, entity existence,
// relation state), so the first violated condition determines the reply.

func (h *Handler) addFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	var req models.FavoritePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("error decoding favorite player request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Player ID is required"}, http.StatusBadRequest)
		return
	}

	err := h.services.FavoritesService.AddFavoritePlayer(r.Context(), userID, req.PlayerID)
	if err != nil {
		h.writeFavoritePlayerError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("player_id", req.PlayerID).Msg("player added to favorites")
	utils.WriteJSON(w, models.MessageResponse{Message: "Player added to favorites"}, http.StatusCreated)
}

func (h *Handler) removeFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	var req models.FavoritePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("error decoding favorite player request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Player ID is required"}, http.StatusBadRequest)
		return
	}

	err := h.services.FavoritesService.RemoveFavoritePlayer(r.Context(), userID, req.PlayerID)
	if err != nil {
		h.writeFavoritePlayerError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("player_id", req.PlayerID).Msg("player removed from favorites")
	utils.WriteJSON(w, models.MessageResponse{Message: "Player removed from favorites"}, http.StatusOK)
}

func (h *Handler) addFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	var req models.FavoriteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("error decoding favorite team request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Team ID is required"}, http.StatusBadRequest)
		return
	}

	err := h.services.FavoritesService.AddFavoriteTeam(r.Context(), userID, req.TeamID)
	if err != nil {
		h.writeFavoriteTeamError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("team_id", req.TeamID).Msg("team added to favorites")
	utils.WriteJSON(w, models.MessageResponse{Message: "Team added to favorites"}, http.StatusCreated)
}

func (h *Handler) removeFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	var req models.FavoriteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("error decoding favorite team request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Team ID is required"}, http.StatusBadRequest)
		return
	}

	err := h.services.FavoritesService.RemoveFavoriteTeam(r.Context(), userID, req.TeamID)
	if err != nil {
		h.writeFavoriteTeamError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("team_id", req.TeamID).Msg("team removed from favorites")
	utils.WriteJSON(w, models.MessageResponse{Message: "Team removed from favorites"}, http.StatusOK)
}

// writeFavoritePlayerError maps FavoritesService errors for the player
// endpoints. Validation and user-lookup failures use the "error" response
// key; entity and relation failures use the "message" key.
func (h *Handler) writeFavoritePlayerError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Msg("favorite player mutation rejected")

	switch {
	case errors.Is(err, service.ErrPlayerIDRequired):
		utils.WriteJSON(w, models.ErrorResponse{Error: "Player ID is required"}, http.StatusBadRequest)
	case errors.Is(err, store.ErrNoUserWasFound):
		utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
	case errors.Is(err, store.ErrPlayerNotFound):
		utils.WriteJSON(w, models.MessageResponse{Message: "Player does not exist"}, http.StatusNotFound)
	case errors.Is(err, store.ErrPlayerAlreadyFavorite):
		utils.WriteJSON(w, models.MessageResponse{Message: "Player is already in favorites"}, http.StatusConflict)
	case errors.Is(err, store.ErrPlayerNotFavorite):
		utils.WriteJSON(w, models.MessageResponse{Message: "Player is not in favorites"}, http.StatusNotFound)
	default:
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
	}
}

// writeFavoriteTeamError mirrors writeFavoritePlayerError for team endpoints.
func (h *Handler) writeFavoriteTeamError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Msg("favorite team mutation rejected")

	switch {
	case errors.Is(err, service.ErrTeamIDRequired):
		utils.WriteJSON(w, models.ErrorResponse{Error: "Team ID is required"}, http.StatusBadRequest)
	case errors.Is(err, store.ErrNoUserWasFound):
		utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
	case errors.Is(err, store.ErrTeamNotFound):
		utils.WriteJSON(w, models.MessageResponse{Message: "Team does not exist"}, http.StatusNotFound)
	case errors.Is(err, store.ErrTeamAlreadyFavorite):
		utils.WriteJSON(w, models.MessageResponse{Message: "Team is already in favorites"}, http.StatusConflict)
	case errors.Is(err, store.ErrTeamNotFavorite):
		utils.WriteJSON(w, models.MessageResponse{Message: "Team is not in favorites"}, http.StatusNotFound)
	default:
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
	}
}
