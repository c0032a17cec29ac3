package models

// Profile bundles a user with their curated favorite lists. Favorite teams
// carry their rosters, resolved explicitly by the service layer.
type Profile struct {
	User            User
	FavoritePlayers []Player
	FavoriteTeams   []Team
}
