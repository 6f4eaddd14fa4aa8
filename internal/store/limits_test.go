package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitRepo_GetCreatesDefaults(t *testing.T) {
	repo := openTestStore(t).LimitRepo()
	ctx := context.Background()

	u, err := repo.Get(ctx, "ada", Limits{QuizLimit: 15, FlashcardLimit: 120})
	require.NoError(t, err)
	assert.Equal(t, "ada", u.UserID)
	assert.Equal(t, 15, u.QuizLimit)
	assert.Equal(t, 120, u.FlashcardLimit)
	assert.Equal(t, 0, u.QuizCount)
	assert.Equal(t, 15, u.QuizzesRemaining())
	assert.Equal(t, 120, u.FlashcardsRemaining())

	// Later defaults do not overwrite the stored row.
	u, err = repo.Get(ctx, "ada", Limits{QuizLimit: 1, FlashcardLimit: 1})
	require.NoError(t, err)
	assert.Equal(t, 15, u.QuizLimit)
}

func TestLimitRepo_Counters(t *testing.T) {
	repo := openTestStore(t).LimitRepo()
	ctx := context.Background()
	defaults := Limits{QuizLimit: 2, FlashcardLimit: 10}

	_, err := repo.Get(ctx, "ada", defaults)
	require.NoError(t, err)

	require.NoError(t, repo.IncrementQuizzes(ctx, "ada", 1))
	require.NoError(t, repo.IncrementQuizzes(ctx, "ada", 1))
	require.NoError(t, repo.AddFlashcards(ctx, "ada", 7))

	u, err := repo.Get(ctx, "ada", defaults)
	require.NoError(t, err)
	assert.Equal(t, 2, u.QuizCount)
	assert.Equal(t, 0, u.QuizzesRemaining())
	assert.Equal(t, 7, u.FlashcardCount)
	assert.Equal(t, 3, u.FlashcardsRemaining())

	require.NoError(t, repo.IncrementQuizzes(ctx, "ada", 1))
	u, err = repo.Get(ctx, "ada", defaults)
	require.NoError(t, err)
	assert.Equal(t, 0, u.QuizzesRemaining(), "remaining never goes negative")

	require.NoError(t, repo.ResetUsage(ctx, "ada"))
	u, err = repo.Get(ctx, "ada", defaults)
	require.NoError(t, err)
	assert.Equal(t, 0, u.QuizCount)
	assert.Equal(t, 0, u.FlashcardCount)
}

func TestLimitRepo_IncrementUnknownProfile(t *testing.T) {
	repo := openTestStore(t).LimitRepo()
	err := repo.IncrementQuizzes(context.Background(), "ghost", 1)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestLimitRepo_SetLimits(t *testing.T) {
	repo := openTestStore(t).LimitRepo()
	ctx := context.Background()

	require.NoError(t, repo.SetLimits(ctx, "ada", Limits{QuizLimit: 30, FlashcardLimit: 200}))
	u, err := repo.Get(ctx, "ada", Limits{QuizLimit: 15, FlashcardLimit: 120})
	require.NoError(t, err)
	assert.Equal(t, 30, u.QuizLimit)
	assert.Equal(t, 200, u.FlashcardLimit)

	require.NoError(t, repo.SetLimits(ctx, "ada", Limits{QuizLimit: 5, FlashcardLimit: 50}))
	u, err = repo.Get(ctx, "ada", Limits{})
	require.NoError(t, err)
	assert.Equal(t, 5, u.QuizLimit)
	assert.Equal(t, 50, u.FlashcardLimit)
}
