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

// requireOwner compares the authenticated user (injected into the context by
// the auth middleware) against the {id} path parameter. A mismatch is
// answered with 403 "Unauthorized access" and ok=false; callers must return
// immediately in that case. Route patterns constrain {id} to digits, so the
// parse cannot fail for requests that reached the handler.
func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	log := logger.FromRequest(r)

	pathID, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		log.Err(err).Msg("error parsing user id path parameter")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Unauthorized access"}, http.StatusForbidden)
		return 0, false
	}

	authedID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || authedID != pathID {
		log.Warn().Int64("path_user_id", pathID).Msg("ownership check failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Unauthorized access"}, http.StatusForbidden)
		return 0, false
	}

	return pathID, true
}

// getUser handles GET /users/{id}: the owner's profile with fully resolved
// favorite players and favorite teams (rosters included).
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("user_id", userID).Msg("profile user not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
		default:
			log.Err(err).Int64("user_id", userID).Msg("error loading profile")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	favoritePlayers := make([]models.PlayerView, 0, len(profile.FavoritePlayers))
	for _, player := range profile.FavoritePlayers {
		favoritePlayers = append(favoritePlayers, playerView(player))
	}

	favoriteTeams := make([]models.TeamView, 0, len(profile.FavoriteTeams))
	for _, team := range profile.FavoriteTeams {
		favoriteTeams = append(favoriteTeams, teamView(team))
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Username:        profile.User.Username,
		Email:           profile.User.Email,
		FavoritePlayers: favoritePlayers,
		FavoriteTeams:   favoriteTeams,
	}, http.StatusOK)
}

// updateUser handles PUT /users/{id}. Email is the only mutable field; an
// absent or blank email leaves the profile unchanged but still succeeds.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding update user request body")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Missing data"}, http.StatusBadRequest)
		return
	}

	if req.Email != "" {
		if err := h.services.UserService.UpdateEmail(r.Context(), userID, req.Email); err != nil {
			switch {
			case errors.Is(err, store.ErrEmailAlreadyRegistered):
				log.Err(err).Int64("user_id", userID).Msg("email already taken")
				utils.WriteJSON(w, models.ErrorResponse{Error: "Email already registered"}, http.StatusConflict)
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Int64("user_id", userID).Msg("user vanished during update")
				utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
			default:
				log.Err(err).Int64("user_id", userID).Msg("error updating profile")
				utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
			}
			return
		}
	}

	log.Info().Int64("user_id", userID).Msg("profile updated")
	utils.WriteJSON(w, models.MessageResponse{Message: "Profile updated successfully"}, http.StatusOK)
}

// deleteUser handles DELETE /users/{id}. Deleting the account cascades to
// the user's favorite relations at the storage layer.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.requireOwner(w, r, "id")
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("user_id", userID).Msg("user vanished during delete")
			utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
		default:
			log.Err(err).Int64("user_id", userID).Msg("error deleting user")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("user_id", userID).Msg("user deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted successfully"}, http.StatusOK)
}
