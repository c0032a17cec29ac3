package http

import (
	"encoding/base64"

	"fanbase/models"
)

// encodePicture converts raw image bytes to their base64 wire form.
// Nil or empty input yields nil, which serializes as JSON null.
func encodePicture(picture []byte) *string {
	if len(picture) == 0 {
		return nil
	}

	encoded := base64.StdEncoding.EncodeToString(picture)
	return &encoded
}

func playerView(player models.Player) models.PlayerView {
	return models.PlayerView{
		PlayerID: player.PlayerID,
		Name:     player.Name,
		Picture:  encodePicture(player.Picture),
	}
}

func teamView(team models.Team) models.TeamView {
	players := make([]models.PlayerView, 0, len(team.Players))
	for _, player := range team.Players {
		players = append(players, playerView(player))
	}

	return models.TeamView{
		TeamID:  team.TeamID,
		Name:    team.Name,
		Picture: encodePicture(team.Picture),
		Players: players,
	}
}

func playerDirectoryEntries(players []models.Player) []models.DirectoryEntry {
	entries := make([]models.DirectoryEntry, 0, len(players))
	for _, player := range players {
		entries = append(entries, models.DirectoryEntry{
			ID:      player.PlayerID,
			Name:    player.Name,
			Picture: encodePicture(player.Picture),
		})
	}

	return entries
}

func teamDirectoryEntries(teams []models.Team) []models.DirectoryEntry {
	entries := make([]models.DirectoryEntry, 0, len(teams))
	for _, team := range teams {
		entries = append(entries, models.DirectoryEntry{
			ID:      team.TeamID,
			Name:    team.Name,
			Picture: encodePicture(team.Picture),
		})
	}

	return entries
}

func leaderboardEntries(rows []models.FanCount) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.LeaderboardEntry{
			ID:       row.ID,
			Name:     row.Name,
			FanCount: row.FanCount,
			Picture:  encodePicture(row.Picture),
		})
	}

	return entries
}
