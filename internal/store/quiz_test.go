package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPacks(t *testing.T, repo QuizRepo, userID string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		qs := make([]NewQuestion, i)
		for j := range qs {
			qs[j] = NewQuestion{Question: fmt.Sprintf("Q%d|||||True", j), Answer: "True"}
		}
		err := repo.SavePack(context.Background(), userID, fmt.Sprintf("quiz-%d", i), fmt.Sprintf("Pack %d", i), qs)
		require.NoError(t, err)
	}
}

func TestQuizRepo_SaveAndGet(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()

	questions := []NewQuestion{
		{Question: "2+2?|||||A) 3|||||B) 4|||||C) 5|||||D) 6", Answer: "B) 4"},
		{Question: "Water is wet.|||||True", Answer: "True"},
	}
	require.NoError(t, repo.SavePack(ctx, "ada", "quiz-abc", "Arithmetic", questions))

	pack, err := repo.GetPack(ctx, "ada", "quiz-abc")
	require.NoError(t, err)
	assert.Equal(t, "Arithmetic", pack.Name)
	assert.Equal(t, 2, pack.QuestionCount)
	require.Len(t, pack.Questions, 2)
	assert.Equal(t, questions[0].Question, pack.Questions[0].Question)
	assert.Equal(t, "B) 4", pack.Questions[0].Answer)
	assert.Equal(t, "True", pack.Questions[1].Answer)
	assert.False(t, pack.CreatedAt.IsZero())
}

func TestQuizRepo_SaveEmptyPack(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	err := repo.SavePack(context.Background(), "ada", "quiz-empty", "Nothing", nil)
	assert.Error(t, err)
}

func TestQuizRepo_GetScopedToUser(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()
	seedPacks(t, repo, "ada", 1)

	_, err := repo.GetPack(ctx, "bob", "quiz-1")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = repo.GetPack(ctx, "ada", "quiz-missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestQuizRepo_ListPacksPaginates(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()
	seedPacks(t, repo, "ada", 7)
	seedPacks(t, repo, "bob", 2)

	first, total, err := repo.ListPacks(ctx, "ada", Page{Number: 1, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, first, 5)
	assert.Equal(t, "quiz-7", first[0].PackID, "newest pack first")
	assert.Equal(t, "Pack 7", first[0].Name)
	assert.Equal(t, 7, first[0].QuestionCount)
	assert.False(t, first[0].CreatedAt.IsZero())

	second, total, err := repo.ListPacks(ctx, "ada", Page{Number: 2, Size: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, second, 2)
	assert.Equal(t, "quiz-2", second[0].PackID)
	assert.Equal(t, "quiz-1", second[1].PackID)

	beyond, _, err := repo.ListPacks(ctx, "ada", Page{Number: 9, Size: 5})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestQuizRepo_ListPacksEmpty(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	packs, total, err := repo.ListPacks(context.Background(), "nobody", Page{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, packs)
}

func TestQuizRepo_Rename(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()
	seedPacks(t, repo, "ada", 3)

	require.NoError(t, repo.RenamePack(ctx, "ada", "quiz-3", "Renamed"))
	pack, err := repo.GetPack(ctx, "ada", "quiz-3")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", pack.Name)
	for _, q := range pack.Questions {
		assert.Equal(t, "Renamed", q.QuizName)
	}

	err = repo.RenamePack(ctx, "bob", "quiz-3", "Hijack")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestQuizRepo_Delete(t *testing.T) {
	repo := openTestStore(t).QuizRepo()
	ctx := context.Background()
	seedPacks(t, repo, "ada", 2)

	err := repo.DeletePack(ctx, "bob", "quiz-2")
	assert.True(t, errors.Is(err, ErrNotFound), "other profiles cannot delete: %v", err)

	require.NoError(t, repo.DeletePack(ctx, "ada", "quiz-2"))
	_, err = repo.GetPack(ctx, "ada", "quiz-2")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = repo.DeletePack(ctx, "ada", "quiz-2")
	assert.True(t, errors.Is(err, ErrNotFound), "second delete: %v", err)

	_, total, err := repo.ListPacks(ctx, "ada", Page{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
