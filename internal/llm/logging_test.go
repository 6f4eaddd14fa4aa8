package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learninghub/internal/store"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"cards":[]}`), Usage: Usage{InputTokens: 40, OutputTokens: 10}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}},
	)
	p := WithLogging(mock, s.EventRepo(), nil)

	ctx := WithPurpose(context.Background(), "flashcard-gen")
	req := Request{
		System:   "You write flashcards.",
		Messages: []Message{{Role: RoleUser, Content: "Photosynthesis needs light."}},
		Schema:   &Schema{Name: "flashcard-set", Definition: map[string]any{"type": "object"}},
	}
	_, err = p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Purpose: "flashcard-gen"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "slow down")

	assert.True(t, ok.Success)
	assert.Equal(t, ProviderMock, ok.Provider)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, 40, ok.InputTokens)
	assert.Equal(t, `{"cards":[]}`, ok.ResponseBody)
	assert.True(t, strings.Contains(ok.RequestBody, "[schema: flashcard-set]"))
	assert.True(t, strings.Contains(ok.RequestBody, "Photosynthesis needs light."))
}

func TestLoggingProvider_NilEventRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, ProviderMock, p.Name())
}
