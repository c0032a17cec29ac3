package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fanbase/internal/logger"
	"fanbase/internal/store"
	"fanbase/internal/utils"
	"fanbase/models"
)

// getTeam handles GET /teams/{id}: the public team card with its full roster.
func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	teamID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("error parsing team id path parameter")
		utils.WriteJSON(w, models.MessageResponse{Message: "Team does not exist"}, http.StatusNotFound)
		return
	}

	team, err := h.services.CatalogService.GetTeam(r.Context(), teamID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTeamNotFound):
			log.Err(err).Int64("team_id", teamID).Msg("team not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "Team does not exist"}, http.StatusNotFound)
		default:
			log.Err(err).Int64("team_id", teamID).Msg("error loading team")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.TeamDetailResponse{
		Team:    teamView(team),
		Picture: encodePicture(team.Picture),
	}, http.StatusOK)
}

// searchTeams handles GET /teams/search?name=... with a case-insensitive
// substring match over team names.
func (h *Handler) searchTeams(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteJSON(w, models.MessageResponse{Message: "No search query provided"}, http.StatusBadRequest)
		return
	}

	teams, err := h.services.CatalogService.SearchTeams(r.Context(), name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("error searching teams")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	if len(teams) == 0 {
		utils.WriteJSON(w, models.MessageResponse{Message: "No teams found matching the search criteria"}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.SearchTeamsResponse{Teams: teamDirectoryEntries(teams)}, http.StatusOK)
}
