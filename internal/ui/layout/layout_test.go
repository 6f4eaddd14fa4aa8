package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderFooterDropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{"↑↓", "Navigate"},
		{"Enter", "Select"},
		{"Ctrl+C", "Quit the application immediately"},
	}

	wide := RenderFooter(hints, 120)
	for _, h := range hints {
		if !strings.Contains(wide, h.Description) {
			t.Errorf("wide footer missing %q", h.Description)
		}
	}

	narrow := RenderFooter(hints, 40)
	if !strings.Contains(narrow, "Navigate") {
		t.Error("narrow footer should keep the first hint")
	}
	if strings.Contains(narrow, "immediately") {
		t.Error("narrow footer should drop hints that do not fit")
	}
}

func TestRenderHeaderCompact(t *testing.T) {
	if !strings.Contains(RenderHeader("My Quizzes", "default", 120), "LearningHub") {
		t.Error("wide header should show the brand")
	}
	compact := RenderHeader("My Quizzes", "default", 80)
	if strings.Contains(compact, "LearningHub") {
		t.Error("compact header should drop the brand")
	}
	if !strings.Contains(compact, "My Quizzes") || !strings.Contains(compact, "default") {
		t.Error("compact header should keep title and profile")
	}
}

func TestDivider(t *testing.T) {
	if w := lipgloss.Width(Divider(100, 40)); w != 40 {
		t.Errorf("Divider width = %d, want 40", w)
	}
	if w := lipgloss.Width(Divider(4, 40)); w != 1 {
		t.Errorf("Divider width on tiny terminal = %d, want 1", w)
	}
}

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
