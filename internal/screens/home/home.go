package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/router"
	"github.com/marblesj/wace-student-trainer/internal/screen"
	"github.com/marblesj/wace-student-trainer/internal/screens/imports"
	"github.com/marblesj/wace-student-trainer/internal/screens/practice"
	"github.com/marblesj/wace-student-trainer/internal/screens/scheduleinfo"
	"github.com/marblesj/wace-student-trainer/internal/store"
	"github.com/marblesj/wace-student-trainer/internal/ui/components"
	"github.com/marblesj/wace-student-trainer/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
	eng  *engine.Engine
	st   *store.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(eng *engine.Engine, st *store.Store) *HomeScreen {
	h := &HomeScreen{eng: eng, st: st}

	items := []components.MenuItem{
		{
			Label: "PRACTICE",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(eng, st.Sessions())}
				}
			},
		},
		{
			Label: "SCHEDULE",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: scheduleinfo.New(eng, st.Profile())}
				}
			},
		},
		{
			Label: "IMPORTS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: imports.New(st.Profile())}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	h.menu = components.NewMenu(items)
	h.refreshHints()
	return h
}

// refreshHints recomputes the data-dependent menu hints. The unlocked set
// can change while this screen sits under the schedule screen, so hints are
// derived again on every render rather than fixed at construction.
func (h *HomeScreen) refreshHints() {
	available := len(h.eng.AvailableQuestions())
	total := h.eng.PoolCounts().Total
	h.menu.Items[0].Hint = fmt.Sprintf("%d of %d questions available", available, total)
	h.menu.Items[1].Hint = fmt.Sprintf("%d problem types unlocked", len(h.eng.Unlocked()))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refreshHints()
	sched := h.eng.ScheduleSummary()

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("WACE Student Trainer"))
	b.WriteString("\n")
	sub := sched.ClassName
	if sched.TeacherName != "" {
		sub += " — " + sched.TeacherName
	}
	b.WriteString(theme.Subtitle.Width(width).Render(sub))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
