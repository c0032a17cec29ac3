package models

// Team is a read-mostly directory entity owning a roster of players.
// The roster is used only for display composition.
type Team struct {
	// TeamID is the internal unique identifier of the team.
	TeamID int64 `json:"team_id"`

	// Name is the team's display name.
	Name string `json:"team_name"`

	// Picture holds the raw binary emblem, nil when absent.
	Picture []byte `json:"-"`

	// Players is the team roster, populated on demand by an explicit
	// roster query. Not a live collection.
	Players []Player `json:"-"`
}
