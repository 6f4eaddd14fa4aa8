package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardRepo_SaveAndList(t *testing.T) {
	repo := openTestStore(t).FlashcardRepo()
	ctx := context.Background()

	var cards []NewFlashcard
	for i := 0; i < 12; i++ {
		cards = append(cards, NewFlashcard{Question: fmt.Sprintf("Term %d", i), Answer: fmt.Sprintf("Meaning %d", i)})
	}
	require.NoError(t, repo.SaveCards(ctx, "ada", "fc-1", cards))
	require.NoError(t, repo.SaveCards(ctx, "bob", "fc-2", cards[:1]))

	page, total, err := repo.List(ctx, "ada", Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, page, 10)
	assert.Equal(t, "Term 11", page[0].Question, "newest first")
	assert.Equal(t, "fc-1", page[0].PackID)

	rest, _, err := repo.List(ctx, "ada", Page{Number: 2, Size: 10})
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestFlashcardRepo_ListEmpty(t *testing.T) {
	repo := openTestStore(t).FlashcardRepo()
	cards, total, err := repo.List(context.Background(), "nobody", Page{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestFlashcardRepo_Delete(t *testing.T) {
	repo := openTestStore(t).FlashcardRepo()
	ctx := context.Background()
	require.NoError(t, repo.SaveCards(ctx, "ada", "fc-1", []NewFlashcard{{Question: "Q", Answer: "A"}}))

	cards, _, err := repo.List(ctx, "ada", Page{})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	id := cards[0].ID

	err = repo.Delete(ctx, "bob", id)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	require.NoError(t, repo.Delete(ctx, "ada", id))
	err = repo.Delete(ctx, "ada", id)
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
