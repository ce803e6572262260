package calculations

import (
	"api/database"
	"api/schemas"
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Sessions live in a per-user redis hash (field = session id). They are
// durable across restarts but deliberately outside MongoDB: a session is a
// private scratchpad of whoever started it, not shared CRM data.

func sessionsKey(userID string) string {
	return database.KEY_PREFIX_CALCULATION + userID
}

func saveSession(ctx context.Context, session schemas.CalculationEntry) error {
	rdb, err := database.NewRedisClient()
	if err != nil {
		return err
	}
	defer rdb.Close()

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return rdb.HSet(ctx, sessionsKey(session.UserID), session.ID, raw).Err()
}

func loadSessions(ctx context.Context, userID string) ([]schemas.CalculationEntry, error) {
	rdb, err := database.NewRedisClient()
	if err != nil {
		return nil, err
	}
	defer rdb.Close()

	fields, err := rdb.HGetAll(ctx, sessionsKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]schemas.CalculationEntry, 0, len(fields))
	for _, raw := range fields {
		session := schemas.CalculationEntry{}
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			// A corrupt entry must not hide the rest.
			continue
		}
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartDate.Before(sessions[j].StartDate)
	})

	return sessions, nil
}

func loadSession(ctx context.Context, userID, sessionID string) (schemas.CalculationEntry, error) {
	session := schemas.CalculationEntry{}

	rdb, err := database.NewRedisClient()
	if err != nil {
		return session, err
	}
	defer rdb.Close()

	raw, err := rdb.HGet(ctx, sessionsKey(userID), sessionID).Result()
	if err != nil {
		return session, err
	}

	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return session, fmt.Errorf("corrupt calculation entry %s: %w", sessionID, err)
	}
	return session, nil
}

func deleteSession(ctx context.Context, userID, sessionID string) (bool, error) {
	rdb, err := database.NewRedisClient()
	if err != nil {
		return false, err
	}
	defer rdb.Close()

	removed, err := rdb.HDel(ctx, sessionsKey(userID), sessionID).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
