package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type limitRepo struct {
	db querier
}

func (r *limitRepo) Get(ctx context.Context, userID string, defaults Limits) (*Usage, error) {
	if err := r.ensure(ctx, userID, defaults); err != nil {
		return nil, err
	}

	sel := builder().Select("user_id", "q_limit", "q_current", "fc_limit", "fc_current", "updated_at").
		From(builder().Table(tableLimits)).
		Where(entsql.EQ("user_id", userID))

	var u Usage
	err := queryRowSpec(ctx, r.db, sel).Scan(&u.UserID, &u.QuizLimit, &u.QuizCount, &u.FlashcardLimit, &u.FlashcardCount, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("limits for %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("limits for %s: %w", userID, err)
	}
	return &u, nil
}

// ensure inserts the default row for userID unless one already exists.
func (r *limitRepo) ensure(ctx context.Context, userID string, defaults Limits) error {
	ins := builder().Insert(tableLimits).
		Columns("user_id", "q_limit", "q_current", "fc_limit", "fc_current", "updated_at").
		Values(userID, defaults.QuizLimit, 0, defaults.FlashcardLimit, 0, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("user_id"),
			entsql.DoNothing(),
		)
	if _, err := execSpec(ctx, r.db, ins); err != nil {
		return fmt.Errorf("init limits for %s: %w", userID, err)
	}
	return nil
}

func (r *limitRepo) SetLimits(ctx context.Context, userID string, limits Limits) error {
	if err := r.ensure(ctx, userID, limits); err != nil {
		return err
	}
	upd := builder().Update(tableLimits).
		Set("q_limit", limits.QuizLimit).
		Set("fc_limit", limits.FlashcardLimit).
		Set("updated_at", time.Now().UTC()).
		Where(entsql.EQ("user_id", userID))
	res, err := execSpec(ctx, r.db, upd)
	return checkAffected("set limits for "+userID, res, err)
}

func (r *limitRepo) IncrementQuizzes(ctx context.Context, userID string, n int) error {
	return r.add(ctx, userID, "q_current", n)
}

func (r *limitRepo) AddFlashcards(ctx context.Context, userID string, n int) error {
	return r.add(ctx, userID, "fc_current", n)
}

func (r *limitRepo) add(ctx context.Context, userID, column string, n int) error {
	upd := builder().Update(tableLimits).
		Add(column, n).
		Set("updated_at", time.Now().UTC()).
		Where(entsql.EQ("user_id", userID))
	res, err := execSpec(ctx, r.db, upd)
	return checkAffected(fmt.Sprintf("bump %s for %s", column, userID), res, err)
}

// ResetUsage zeroes both counters. A profile without a row is left alone.
func (r *limitRepo) ResetUsage(ctx context.Context, userID string) error {
	upd := builder().Update(tableLimits).
		Set("q_current", 0).
		Set("fc_current", 0).
		Set("updated_at", time.Now().UTC()).
		Where(entsql.EQ("user_id", userID))
	if _, err := execSpec(ctx, r.db, upd); err != nil {
		return fmt.Errorf("reset usage for %s: %w", userID, err)
	}
	return nil
}
