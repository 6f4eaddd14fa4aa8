package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type flashcardRepo struct {
	db querier
}

func (r *flashcardRepo) SaveCards(ctx context.Context, userID, packID string, cards []NewFlashcard) error {
	if len(cards) == 0 {
		return fmt.Errorf("save flashcards %s: no cards", packID)
	}

	now := time.Now().UTC()
	ins := builder().Insert(tableFlashcards).
		Columns("user_id", "pack_id", "question", "answer", "created_at")
	for _, c := range cards {
		ins.Values(userID, packID, c.Question, c.Answer, now)
	}

	if _, err := execSpec(ctx, r.db, ins); err != nil {
		return fmt.Errorf("save flashcards %s: %w", packID, err)
	}
	return nil
}

// List returns flashcards newest first.
func (r *flashcardRepo) List(ctx context.Context, userID string, page Page) ([]Flashcard, int, error) {
	page = page.normalize()

	var total int
	count := builder().Select(entsql.Count("*")).
		From(builder().Table(tableFlashcards)).
		Where(entsql.EQ("user_id", userID))
	if err := queryRowSpec(ctx, r.db, count).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count flashcards: %w", err)
	}

	sel := builder().Select("id", "user_id", "pack_id", "question", "answer", "created_at").
		From(builder().Table(tableFlashcards)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy(entsql.Desc("id")).
		Limit(page.Size).
		Offset(page.Offset())

	rows, err := querySpecRows(ctx, r.db, sel)
	if err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards := []Flashcard{}
	for rows.Next() {
		var c Flashcard
		if err := rows.Scan(&c.ID, &c.UserID, &c.PackID, &c.Question, &c.Answer, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, total, nil
}

func (r *flashcardRepo) Delete(ctx context.Context, userID string, id int) error {
	del := builder().Delete(tableFlashcards).
		Where(entsql.And(
			entsql.EQ("user_id", userID),
			entsql.EQ("id", id),
		))
	res, err := execSpec(ctx, r.db, del)
	return checkAffected(fmt.Sprintf("delete flashcard %d", id), res, err)
}

func (r *flashcardRepo) DeleteAll(ctx context.Context, userID string) (int, error) {
	del := builder().Delete(tableFlashcards).Where(entsql.EQ("user_id", userID))
	res, err := execSpec(ctx, r.db, del)
	if err != nil {
		return 0, fmt.Errorf("delete flashcards: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete flashcards: %w", err)
	}
	return int(n), nil
}
