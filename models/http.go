package models

import "encoding/json"

// Request bodies accepted by the HTTP API. Every endpoint decodes into an
// explicit typed record; no dynamic dictionary-shaped payloads.

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PUT /users/{id}.
// Email is the only field that can be updated.
type UpdateUserRequest struct {
	Email string `json:"email"`
}

// FavoritePlayerRequest is the body of POST/DELETE /users/{id}/favorites/players.
type FavoritePlayerRequest struct {
	PlayerID int64 `json:"playerId"`
}

// FavoriteTeamRequest is the body of POST/DELETE /users/{id}/favorites/teams.
type FavoriteTeamRequest struct {
	TeamID int64 `json:"teamId"`
}

// MessageResponse is the generic success/diagnostic body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned by POST /login on success.
type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// PlayerView is the wire representation of a player inside profile and
// detail payloads. Picture is base64-encoded, null when absent.
type PlayerView struct {
	PlayerID int64   `json:"player_id"`
	Name     string  `json:"player_name"`
	Picture  *string `json:"picture"`
}

// TeamView is the wire representation of a team, roster included.
type TeamView struct {
	TeamID  int64        `json:"team_id"`
	Name    string       `json:"team_name"`
	Picture *string      `json:"picture"`
	Players []PlayerView `json:"players"`
}

// DirectoryEntry is the flat search-result representation shared by
// player and team search responses.
type DirectoryEntry struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
}

// ProfileResponse is returned by GET /users/{id}.
type ProfileResponse struct {
	Username        string       `json:"username"`
	Email           string       `json:"email"`
	FavoritePlayers []PlayerView `json:"favorite_players"`
	FavoriteTeams   []TeamView   `json:"favorite_teams"`
}

// PlayerDetailResponse is returned by GET /players/{id}. Stats is the opaque
// season-average structure produced by the external data source, null when
// the source is unavailable.
type PlayerDetailResponse struct {
	Player  PlayerView      `json:"player"`
	Picture *string         `json:"picture"`
	Stats   json.RawMessage `json:"stats"`
}

// TeamDetailResponse is returned by GET /teams/{id}.
type TeamDetailResponse struct {
	Team    TeamView `json:"team"`
	Picture *string  `json:"picture"`
}

// SearchPlayersResponse is returned by GET /players/search.
type SearchPlayersResponse struct {
	Players []DirectoryEntry `json:"players"`
}

// SearchTeamsResponse is returned by GET /teams/search.
type SearchTeamsResponse struct {
	Teams []DirectoryEntry `json:"teams"`
}

// LeaderboardEntry is one row of GET /top-players and GET /top-teams.
type LeaderboardEntry struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	FanCount int64   `json:"fan_count"`
	Picture  *string `json:"picture"`
}
