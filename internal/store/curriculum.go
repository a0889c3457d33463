package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/persona"
)

// curriculumRepo implements CurriculumRepo on raw SQL. List-valued columns
// (objectives, topics, style, adaptations) are stored as JSON text.
type curriculumRepo struct {
	db *sql.DB
}

func (r *curriculumRepo) GetLevel(ctx context.Context, id string) (level.Level, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, ord, persona_id, objectives, topics FROM levels WHERE id = ?`, id)

	var l level.Level
	var objectives, topics string
	err := row.Scan(&l.ID, &l.Name, &l.Order, &l.PersonaID, &objectives, &topics)
	if errors.Is(err, sql.ErrNoRows) {
		return level.Level{}, fmt.Errorf("level %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return level.Level{}, fmt.Errorf("get level: %w", err)
	}

	if err := json.Unmarshal([]byte(objectives), &l.Objectives); err != nil {
		return level.Level{}, fmt.Errorf("decode objectives: %w", err)
	}
	if err := json.Unmarshal([]byte(topics), &l.Topics); err != nil {
		return level.Level{}, fmt.Errorf("decode topics: %w", err)
	}
	return l, nil
}

func (r *curriculumRepo) ListLevels(ctx context.Context) ([]level.Level, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, ord, persona_id, objectives, topics FROM levels ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var out []level.Level
	for rows.Next() {
		var l level.Level
		var objectives, topics string
		if err := rows.Scan(&l.ID, &l.Name, &l.Order, &l.PersonaID, &objectives, &topics); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		if err := json.Unmarshal([]byte(objectives), &l.Objectives); err != nil {
			return nil, fmt.Errorf("decode objectives: %w", err)
		}
		if err := json.Unmarshal([]byte(topics), &l.Topics); err != nil {
			return nil, fmt.Errorf("decode topics: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *curriculumRepo) GetPersona(ctx context.Context, id string) (persona.Persona, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, emoji, base_prompt, style, adaptations FROM personas WHERE id = ?`, id)

	var p persona.Persona
	var style, adaptations string
	err := row.Scan(&p.ID, &p.Name, &p.Emoji, &p.BasePrompt, &style, &adaptations)
	if errors.Is(err, sql.ErrNoRows) {
		return persona.Persona{}, fmt.Errorf("persona %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return persona.Persona{}, fmt.Errorf("get persona: %w", err)
	}

	if err := json.Unmarshal([]byte(style), &p.Style); err != nil {
		return persona.Persona{}, fmt.Errorf("decode style: %w", err)
	}
	if err := json.Unmarshal([]byte(adaptations), &p.Adaptations); err != nil {
		return persona.Persona{}, fmt.Errorf("decode adaptations: %w", err)
	}
	return p, nil
}

func (r *curriculumRepo) Seed(ctx context.Context, levels []level.Level, personas []persona.Persona) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, l := range levels {
		objectives, err := json.Marshal(l.Objectives)
		if err != nil {
			return fmt.Errorf("encode objectives: %w", err)
		}
		topics, err := json.Marshal(l.Topics)
		if err != nil {
			return fmt.Errorf("encode topics: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO levels (id, name, ord, persona_id, objectives, topics)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   name = excluded.name, ord = excluded.ord,
			   persona_id = excluded.persona_id,
			   objectives = excluded.objectives, topics = excluded.topics`,
			l.ID, l.Name, l.Order, l.PersonaID, string(objectives), string(topics))
		if err != nil {
			return fmt.Errorf("seed level %q: %w", l.ID, err)
		}
	}

	for _, p := range personas {
		style, err := json.Marshal(p.Style)
		if err != nil {
			return fmt.Errorf("encode style: %w", err)
		}
		adaptations, err := json.Marshal(p.Adaptations)
		if err != nil {
			return fmt.Errorf("encode adaptations: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO personas (id, name, emoji, base_prompt, style, adaptations)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   name = excluded.name, emoji = excluded.emoji,
			   base_prompt = excluded.base_prompt,
			   style = excluded.style, adaptations = excluded.adaptations`,
			p.ID, p.Name, p.Emoji, p.BasePrompt, string(style), string(adaptations))
		if err != nil {
			return fmt.Errorf("seed persona %q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
