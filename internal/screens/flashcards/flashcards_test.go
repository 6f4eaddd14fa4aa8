package flashcards

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learninghub/internal/library"
	"github.com/abhisek/learninghub/internal/store"
)

const profile = "alice"

func newTestScreen(t *testing.T, cards ...store.NewFlashcard) *FlashcardScreen {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "cards.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if len(cards) > 0 {
		if err := st.FlashcardRepo().SaveCards(context.Background(), profile, "fc-1", cards); err != nil {
			t.Fatalf("SaveCards: %v", err)
		}
	}

	svc := library.NewService(st, nil, library.Config{Defaults: store.Limits{QuizLimit: 1, FlashcardLimit: 1}}, nil)
	f := New(svc, profile)
	run(f, f.Init())
	return f
}

func run(f *FlashcardScreen, cmd tea.Cmd) {
	for cmd != nil {
		_, cmd = f.Update(cmd())
	}
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestFlashcards_FlipAndPage(t *testing.T) {
	f := newTestScreen(t,
		store.NewFlashcard{Question: "Capital of Peru?", Answer: "Lima"},
		store.NewFlashcard{Question: "Capital of Chile?", Answer: "Santiago"},
	)

	if f.total != 2 || f.card == nil {
		t.Fatalf("total = %d card = %v", f.total, f.card)
	}
	// Newest first.
	if f.card.Question != "Capital of Chile?" {
		t.Errorf("first card = %q, want the newest", f.card.Question)
	}

	f.Update(key(tea.KeySpace))
	if !f.flipped {
		t.Fatal("space should flip the card")
	}
	if !strings.Contains(f.View(100, 30), "Santiago") {
		t.Error("flipped view should show the answer")
	}

	_, cmd := f.Update(key(tea.KeyRight))
	run(f, cmd)
	if f.index != 1 || f.card.Question != "Capital of Peru?" || f.flipped {
		t.Errorf("index = %d card = %q flipped = %v", f.index, f.card.Question, f.flipped)
	}

	_, cmd = f.Update(key(tea.KeyRight))
	if cmd != nil {
		t.Error("next past the last card should be a no-op")
	}
}

func TestFlashcards_DeleteLast(t *testing.T) {
	f := newTestScreen(t,
		store.NewFlashcard{Question: "Q1", Answer: "A1"},
		store.NewFlashcard{Question: "Q2", Answer: "A2"},
	)
	_, cmd := f.Update(key(tea.KeyRight))
	run(f, cmd)

	_, cmd = f.Update(key('d'))
	run(f, cmd)
	if f.total != 1 || f.index != 0 || f.card == nil || f.card.Question != "Q2" {
		t.Errorf("after delete: total = %d index = %d card = %+v", f.total, f.index, f.card)
	}

	_, cmd = f.Update(key('d'))
	run(f, cmd)
	if f.total != 0 || f.card != nil {
		t.Errorf("after deleting all: total = %d card = %+v", f.total, f.card)
	}
	if !strings.Contains(f.View(100, 30), "No flashcards yet") {
		t.Error("expected empty-state message")
	}
}
