package postgres

// Snapshot queries
const (
	SQLSelectSnapshot = `SELECT data FROM player_snapshots WHERE player_id = $1`

	SQLUpsertSnapshot = `
		INSERT INTO player_snapshots (player_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	SQLDeleteSnapshot = `DELETE FROM player_snapshots WHERE player_id = $1`
)

// Leaderboard queries
const (
	SQLUpsertLeaderboard = `
		INSERT INTO leaderboard_entries (name, score, prestige, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET score = GREATEST(leaderboard_entries.score, EXCLUDED.score),
		    prestige = EXCLUDED.prestige,
		    updated_at = EXCLUDED.updated_at
	`

	SQLTrimLeaderboard = `
		DELETE FROM leaderboard_entries
		WHERE name NOT IN (
			SELECT name FROM leaderboard_entries
			ORDER BY score DESC, prestige DESC, name COLLATE "C" ASC
			LIMIT $1
		)
	`

	SQLSelectLeaderboard = `
		SELECT name, score, prestige, updated_at
		FROM leaderboard_entries
		ORDER BY score DESC, prestige DESC, name COLLATE "C" ASC
		LIMIT $1
	`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToGetSnapshot       = "failed to get snapshot"
	ErrMsgFailedToPutSnapshot       = "failed to put snapshot"
	ErrMsgFailedToDeleteSnapshot    = "failed to delete snapshot"
	ErrMsgFailedToUpsertLeaderboard = "failed to upsert leaderboard entry"
	ErrMsgFailedToReadLeaderboard   = "failed to read leaderboard"
)
