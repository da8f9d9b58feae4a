package scheduleinfo

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/screen"
	"github.com/marblesj/wace-student-trainer/internal/store"
	"github.com/marblesj/wace-student-trainer/internal/ui/components"
	"github.com/marblesj/wace-student-trainer/internal/ui/layout"
	"github.com/marblesj/wace-student-trainer/internal/ui/theme"
)

// ScheduleScreen shows the taught schedule and which problem types are
// currently unlocked. The student can set their name here (it appears on
// exported progress reports), and when the class schedule allows it, toggle
// working ahead of schedule.
type ScheduleScreen struct {
	eng     *engine.Engine
	profile store.ProfileRepo

	ahead       bool
	studentName string
	status      string

	editingName bool
	nameInput   components.TextInput
}

var _ screen.Screen = (*ScheduleScreen)(nil)

// aheadToggledMsg reports the result of flipping the ahead-of-schedule flag.
type aheadToggledMsg struct {
	ahead bool
	err   error
}

// nameSavedMsg reports the result of persisting the student name.
type nameSavedMsg struct {
	name string
	err  error
}

// New creates the schedule screen.
func New(eng *engine.Engine, profile store.ProfileRepo) *ScheduleScreen {
	s := &ScheduleScreen{eng: eng, profile: profile}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if prof, err := profile.Get(ctx); err == nil && prof != nil {
		s.ahead = prof.AheadOfSchedule
		s.studentName = prof.StudentName
	}
	return s
}

func (s *ScheduleScreen) Init() tea.Cmd {
	return nil
}

func (s *ScheduleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case aheadToggledMsg:
		if msg.err != nil {
			s.status = "Could not save setting: " + msg.err.Error()
			return s, nil
		}
		s.ahead = msg.ahead
		if msg.ahead {
			s.status = "Working ahead of schedule: all scheduled topics unlocked."
		} else {
			s.status = "Following the class schedule."
		}
		return s, nil

	case nameSavedMsg:
		if msg.err != nil {
			s.status = "Could not save name: " + msg.err.Error()
			return s, nil
		}
		s.studentName = msg.name
		s.status = "Name saved."
		return s, nil

	case tea.KeyMsg:
		if s.editingName {
			if msg.String() == "enter" {
				s.editingName = false
				return s, s.saveName(strings.TrimSpace(s.nameInput.Value()))
			}
			var cmd tea.Cmd
			s.nameInput, cmd = s.nameInput.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "a":
			if s.eng.ScheduleSummary().AllowAheadOfSchedule {
				return s, s.toggleAhead()
			}
		case "n":
			s.editingName = true
			s.nameInput = components.NewTextInput("Your name", s.studentName, 40)
			return s, s.nameInput.Init()
		}
	}
	return s, nil
}

// toggleAhead flips the profile flag, persists it, and republishes the
// unlocked set.
func (s *ScheduleScreen) toggleAhead() tea.Cmd {
	eng := s.eng
	repo := s.profile
	target := !s.ahead
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		prof, err := repo.Get(ctx)
		if err != nil {
			return aheadToggledMsg{err: err}
		}
		if prof == nil {
			prof = &store.ProfileRecord{}
		}
		prof.AheadOfSchedule = target
		if err := repo.Save(ctx, prof); err != nil {
			return aheadToggledMsg{err: err}
		}
		if err := eng.Recompute(ctx); err != nil {
			return aheadToggledMsg{err: err}
		}
		return aheadToggledMsg{ahead: target}
	}
}

// saveName persists the student name without touching other profile fields.
func (s *ScheduleScreen) saveName(name string) tea.Cmd {
	repo := s.profile
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		prof, err := repo.Get(ctx)
		if err != nil {
			return nameSavedMsg{err: err}
		}
		if prof == nil {
			prof = &store.ProfileRecord{}
		}
		prof.StudentName = name
		if err := repo.Save(ctx, prof); err != nil {
			return nameSavedMsg{err: err}
		}
		return nameSavedMsg{name: name}
	}
}

func (s *ScheduleScreen) View(width, height int) string {
	sum := s.eng.ScheduleSummary()
	unlocked := s.eng.Unlocked()
	all := s.eng.AllProblemTypes()

	unlockedSet := make(map[string]struct{}, len(unlocked))
	for _, pt := range unlocked {
		unlockedSet[pt] = struct{}{}
	}

	var b strings.Builder
	b.WriteString("  " + theme.Title.Render(sum.ClassName) + "\n")
	if sum.TeacherName != "" {
		b.WriteString("  " + theme.Subtitle.Render("Teacher: "+sum.TeacherName) + "\n")
	}

	if s.editingName {
		b.WriteString("\n  " + s.nameInput.View() + "\n")
	} else {
		name := s.studentName
		if name == "" {
			name = "(not set)"
		}
		b.WriteString("  " + theme.Hint.Render("Student: "+name) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %d of %d topics unlocked\n", len(unlocked), len(all)))
	if sum.NextUnlock != nil {
		label := sum.NextUnlock.Label
		if label == "" {
			label = strings.Join(sum.NextUnlock.ProblemTypes, ", ")
		}
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("Next unlock: %s (%s)", label, sum.NextUnlock.Date)) + "\n")
	}
	b.WriteString("\n")

	for _, pt := range all {
		if _, ok := unlockedSet[pt]; ok {
			b.WriteString(theme.Unlocked.Render("    ✓ "+pt) + "\n")
		} else {
			b.WriteString(theme.LockedItem.Render("    ✗ "+pt) + "\n")
		}
	}

	if sum.AllowAheadOfSchedule {
		b.WriteString("\n")
		state := "off"
		if s.ahead {
			state = "on"
		}
		b.WriteString("  " + theme.Hint.Render("Working ahead of schedule: "+state) + "\n")
	}

	if s.status != "" {
		b.WriteString("\n  " + theme.Body.Render(s.status) + "\n")
	}

	return b.String()
}

func (s *ScheduleScreen) Title() string {
	return "Schedule"
}

// KeyHints provides the footer hints for this screen.
func (s *ScheduleScreen) KeyHints() []layout.KeyHint {
	if s.editingName {
		return []layout.KeyHint{{Key: "Enter", Description: "Save name"}}
	}
	hints := []layout.KeyHint{
		{Key: "n", Description: "Set name"},
		{Key: "Esc", Description: "Back"},
	}
	if s.eng.ScheduleSummary().AllowAheadOfSchedule {
		hints = append([]layout.KeyHint{{Key: "a", Description: "Toggle ahead of schedule"}}, hints...)
	}
	return hints
}
