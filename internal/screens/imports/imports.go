package imports

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/marblesj/wace-student-trainer/internal/screen"
	"github.com/marblesj/wace-student-trainer/internal/store"
	"github.com/marblesj/wace-student-trainer/internal/ui/layout"
	"github.com/marblesj/wace-student-trainer/internal/ui/theme"
)

// ImportsScreen lists the update packages applied so far, newest first.
// Importing itself happens on the command line; this screen is read-only.
type ImportsScreen struct {
	history []store.ImportHistoryEntry
	scroll  int
}

var _ screen.Screen = (*ImportsScreen)(nil)

// New creates the import history screen.
func New(profile store.ProfileRepo) *ImportsScreen {
	s := &ImportsScreen{}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	prof, err := profile.Get(ctx)
	if err != nil || prof == nil {
		return s
	}

	// Newest first for display; the store keeps them in arrival order.
	for i := len(prof.UpdatesImported) - 1; i >= 0; i-- {
		s.history = append(s.history, prof.UpdatesImported[i])
	}
	return s
}

func (s *ImportsScreen) Init() tea.Cmd {
	return nil
}

func (s *ImportsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.history)-1 {
			s.scroll++
		}
	}
	return s, nil
}

func (s *ImportsScreen) View(width, height int) string {
	var b strings.Builder

	if len(s.history) == 0 {
		b.WriteString("  " + theme.Hint.Render("No update packages imported yet.") + "\n\n")
		b.WriteString("  " + theme.Body.Render("Import one with: wace-trainer import <file.json>"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %d update packages imported\n\n", len(s.history)))

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	end := s.scroll + visible
	if end > len(s.history) {
		end = len(s.history)
	}
	for _, entry := range s.history[s.scroll:end] {
		title := entry.Description
		if title == "" {
			title = entry.UpdateID
		}
		b.WriteString("  " + theme.Body.Render(title) + "\n")
		meta := fmt.Sprintf("    %s · %d questions · imported %s",
			entry.UpdateID, entry.QuestionsAdded, entry.ImportedAt.Format("2 Jan 2006"))
		b.WriteString(theme.Hint.Render(meta) + "\n\n")
	}
	return b.String()
}

func (s *ImportsScreen) Title() string {
	return "Imports"
}

// KeyHints provides the footer hints for this screen.
func (s *ImportsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
