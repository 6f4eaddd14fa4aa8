package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// quizRepo stores one row per question, grouped into packs by pack_id.
type quizRepo struct {
	db querier
}

func (r *quizRepo) SavePack(ctx context.Context, userID, packID, name string, questions []NewQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("save pack %s: no questions", packID)
	}

	now := time.Now().UTC()
	ins := builder().Insert(tableQuizzes).
		Columns("user_id", "pack_id", "quiz_name", "question", "answer", "created_at")
	for _, q := range questions {
		ins.Values(userID, packID, name, q.Question, q.Answer, now)
	}

	if _, err := execSpec(ctx, r.db, ins); err != nil {
		return fmt.Errorf("save pack %s: %w", packID, err)
	}
	return nil
}

func (r *quizRepo) ListPacks(ctx context.Context, userID string, page Page) ([]PackSummary, int, error) {
	page = page.normalize()

	var total int
	count := builder().Select(entsql.Count(entsql.Distinct("pack_id"))).
		From(builder().Table(tableQuizzes)).
		Where(entsql.EQ("user_id", userID))
	if err := queryRowSpec(ctx, r.db, count).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count packs: %w", err)
	}
	if total == 0 {
		return []PackSummary{}, 0, nil
	}

	// Packs are ordered by their newest row. The latest row id of each pack
	// is then used to read its name and timestamp.
	sel := builder().Select(
		"pack_id",
		entsql.As(entsql.Count("*"), "question_count"),
		entsql.As(entsql.Max("id"), "last_id"),
	).
		From(builder().Table(tableQuizzes)).
		Where(entsql.EQ("user_id", userID)).
		GroupBy("pack_id").
		OrderBy(entsql.Desc("last_id")).
		Limit(page.Size).
		Offset(page.Offset())

	rows, err := querySpecRows(ctx, r.db, sel)
	if err != nil {
		return nil, 0, fmt.Errorf("list packs: %w", err)
	}
	defer rows.Close()

	var packs []PackSummary
	var lastIDs []any
	for rows.Next() {
		var p PackSummary
		var lastID int
		if err := rows.Scan(&p.PackID, &p.QuestionCount, &lastID); err != nil {
			return nil, 0, fmt.Errorf("scan pack: %w", err)
		}
		packs = append(packs, p)
		lastIDs = append(lastIDs, lastID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list packs: %w", err)
	}
	rows.Close()

	if len(packs) == 0 {
		return []PackSummary{}, total, nil
	}

	details := builder().Select("pack_id", "quiz_name", "created_at").
		From(builder().Table(tableQuizzes)).
		Where(entsql.In("id", lastIDs...))
	drows, err := querySpecRows(ctx, r.db, details)
	if err != nil {
		return nil, 0, fmt.Errorf("pack details: %w", err)
	}
	defer drows.Close()

	byPack := make(map[string]int, len(packs))
	for i, p := range packs {
		byPack[p.PackID] = i
	}
	for drows.Next() {
		var packID, name string
		var created time.Time
		if err := drows.Scan(&packID, &name, &created); err != nil {
			return nil, 0, fmt.Errorf("scan pack details: %w", err)
		}
		if i, ok := byPack[packID]; ok {
			packs[i].Name = name
			packs[i].CreatedAt = created
		}
	}
	if err := drows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pack details: %w", err)
	}

	return packs, total, nil
}

func (r *quizRepo) GetPack(ctx context.Context, userID, packID string) (*QuizPack, error) {
	sel := builder().Select("id", "user_id", "pack_id", "quiz_name", "question", "answer", "created_at").
		From(builder().Table(tableQuizzes)).
		Where(entsql.And(
			entsql.EQ("user_id", userID),
			entsql.EQ("pack_id", packID),
		)).
		OrderBy("id")

	rows, err := querySpecRows(ctx, r.db, sel)
	if err != nil {
		return nil, fmt.Errorf("get pack %s: %w", packID, err)
	}
	defer rows.Close()

	var questions []QuizQuestion
	for rows.Next() {
		var q QuizQuestion
		if err := rows.Scan(&q.ID, &q.UserID, &q.PackID, &q.QuizName, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get pack %s: %w", packID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz %s: %w", packID, ErrNotFound)
	}

	return &QuizPack{
		PackSummary: PackSummary{
			PackID:        packID,
			Name:          questions[0].QuizName,
			QuestionCount: len(questions),
			CreatedAt:     questions[0].CreatedAt,
		},
		Questions: questions,
	}, nil
}

func (r *quizRepo) RenamePack(ctx context.Context, userID, packID, name string) error {
	upd := builder().Update(tableQuizzes).
		Set("quiz_name", name).
		Where(entsql.And(
			entsql.EQ("user_id", userID),
			entsql.EQ("pack_id", packID),
		))
	res, err := execSpec(ctx, r.db, upd)
	return checkAffected("rename quiz "+packID, res, err)
}

func (r *quizRepo) DeletePack(ctx context.Context, userID, packID string) error {
	del := builder().Delete(tableQuizzes).
		Where(entsql.And(
			entsql.EQ("user_id", userID),
			entsql.EQ("pack_id", packID),
		))
	res, err := execSpec(ctx, r.db, del)
	return checkAffected("delete quiz "+packID, res, err)
}

func (r *quizRepo) DeleteAll(ctx context.Context, userID string) (int, error) {
	del := builder().Delete(tableQuizzes).Where(entsql.EQ("user_id", userID))
	res, err := execSpec(ctx, r.db, del)
	if err != nil {
		return 0, fmt.Errorf("delete quizzes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete quizzes: %w", err)
	}
	return int(n), nil
}

// checkAffected reports ErrNotFound when an exec touched no rows.
func checkAffected(op string, res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
