package models

// FanCount is one aggregated leaderboard row: an entity (player or team)
// together with the number of users that favorited it. Produced by the
// leaderboard queries, converted to the wire format by the transport layer.
type FanCount struct {
	ID       int64
	Name     string
	Picture  []byte
	FanCount int64
}
