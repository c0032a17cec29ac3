package models

// Player is a read-mostly directory entity that users can mark as favorite.
type Player struct {
	// PlayerID is the internal unique identifier of the player.
	PlayerID int64 `json:"player_id"`

	// Name is the player's display name.
	Name string `json:"player_name"`

	// Picture holds the raw binary portrait, nil when absent.
	// Serialized as base64 by the transport layer, never directly.
	Picture []byte `json:"-"`
}
