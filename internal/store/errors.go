package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registration fails because
	// a user with the same username already exists in the database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyRegistered is returned when registration fails because
	// a user with the same email already exists in the database.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPlayerNotFound is returned when a lookup targets a player that does
	// not exist in the database.
	ErrPlayerNotFound = errors.New("player does not exist")

	// ErrTeamNotFound is returned when a lookup targets a team that does not
	// exist in the database.
	ErrTeamNotFound = errors.New("team does not exist")

	// ErrPlayerAlreadyFavorite is returned when a favorite insert affects no
	// rows because the (user, player) relation already exists. The composite
	// primary key on favorite_players is the authority here, so a concurrent
	// duplicate add surfaces as this error rather than a second row.
	ErrPlayerAlreadyFavorite = errors.New("player is already in favorites")

	// ErrPlayerNotFavorite is returned when a favorite delete affects no rows
	// because the (user, player) relation does not exist.
	ErrPlayerNotFavorite = errors.New("player is not in favorites")

	// ErrTeamAlreadyFavorite mirrors ErrPlayerAlreadyFavorite for teams.
	ErrTeamAlreadyFavorite = errors.New("team is already in favorites")

	// ErrTeamNotFavorite mirrors ErrPlayerNotFavorite for teams.
	ErrTeamNotFavorite = errors.New("team is not in favorites")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
