package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// resultRepo implements ResultRepo on raw SQL.
type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) SaveConversationResult(ctx context.Context, res ConversationResult) error {
	achievements, err := json.Marshal(res.Achievements)
	if err != nil {
		return fmt.Errorf("encode achievements: %w", err)
	}

	createdAt := res.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO conversation_results
		   (conversation_id, user_id, level_id, overall_score, exchange_count, achievements, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(conversation_id) DO UPDATE SET
		   overall_score = excluded.overall_score,
		   exchange_count = excluded.exchange_count,
		   achievements = excluded.achievements`,
		res.ConversationID, res.UserID, res.LevelID,
		res.OverallScore, res.ExchangeCount, string(achievements), createdAt)
	if err != nil {
		return fmt.Errorf("save conversation result: %w", err)
	}
	return nil
}

func (r *resultRepo) UpdateUserSkill(ctx context.Context, userID, skillID string, delta int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_skills (user_id, skill_id, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, skill_id) DO UPDATE SET
		   value = user_skills.value + excluded.value,
		   updated_at = excluded.updated_at`,
		userID, skillID, delta, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update user skill %q: %w", skillID, err)
	}
	return nil
}

func (r *resultRepo) Skills(ctx context.Context, userID string) ([]UserSkill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, skill_id, value, updated_at FROM user_skills
		 WHERE user_id = ? ORDER BY value DESC, skill_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var out []UserSkill
	for rows.Next() {
		var s UserSkill
		if err := rows.Scan(&s.UserID, &s.SkillID, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
