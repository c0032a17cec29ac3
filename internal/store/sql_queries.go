package store

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserEmail = `UPDATE users
    SET email = $2
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	findPlayerByID = `SELECT player_id, name, picture
    FROM players
    WHERE player_id = $1;`

	searchPlayersByName = `SELECT player_id, name, picture
    FROM players
    WHERE name ILIKE '%' || $1 || '%';`

	findTeamByID = `SELECT team_id, name, picture
    FROM teams
    WHERE team_id = $1;`

	searchTeamsByName = `SELECT team_id, name, picture
    FROM teams
    WHERE name ILIKE '%' || $1 || '%';`

	listTeamPlayers = `SELECT p.player_id, p.name, p.picture
    FROM players p
    JOIN team_players tp ON tp.player_id = p.player_id
    WHERE tp.team_id = $1;`

	// ON CONFLICT DO NOTHING keeps the composite primary key authoritative:
	// a duplicate add reports zero affected rows instead of failing.
	addFavoritePlayer = `INSERT INTO favorite_players (user_id, player_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	removeFavoritePlayer = `DELETE FROM favorite_players
    WHERE user_id = $1 AND player_id = $2;`

	addFavoriteTeam = `INSERT INTO favorite_teams (user_id, team_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	removeFavoriteTeam = `DELETE FROM favorite_teams
    WHERE user_id = $1 AND team_id = $2;`

	listFavoritePlayers = `SELECT p.player_id, p.name, p.picture
    FROM players p
    JOIN favorite_players f ON f.player_id = p.player_id
    WHERE f.user_id = $1;`

	listFavoriteTeams = `SELECT t.team_id, t.name, t.picture
    FROM teams t
    JOIN favorite_teams f ON f.team_id = t.team_id
    WHERE f.user_id = $1;`

	// Tie order among equal fan counts is undefined: the query orders by
	// fan_count only and equal counts come back in store order.
	topPlayers = `SELECT p.player_id, p.name, p.picture, COUNT(f.user_id) AS fan_count
    FROM players p
    JOIN favorite_players f ON f.player_id = p.player_id
    GROUP BY p.player_id, p.name, p.picture
    ORDER BY fan_count DESC
    LIMIT 5;`

	topTeams = `SELECT t.team_id, t.name, t.picture, COUNT(f.user_id) AS fan_count
    FROM teams t
    JOIN favorite_teams f ON f.team_id = t.team_id
    GROUP BY t.team_id, t.name, t.picture
    ORDER BY fan_count DESC
    LIMIT 5;`
)
