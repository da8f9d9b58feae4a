package practice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/marblesj/wace-student-trainer/internal/catalog"
	"github.com/marblesj/wace-student-trainer/internal/engine"
	"github.com/marblesj/wace-student-trainer/internal/screen"
	"github.com/marblesj/wace-student-trainer/internal/store"
	"github.com/marblesj/wace-student-trainer/internal/ui/layout"
	"github.com/marblesj/wace-student-trainer/internal/ui/theme"
)

// mode is the screen's internal state: browsing the list or reading one
// question.
type mode int

const (
	modeList mode = iota
	modeDetail
)

// PracticeScreen lists available questions and shows one at a time. Only
// questions whose every typed part is unlocked appear; the locked remainder
// is shown as a count. A session summary is recorded when the screen
// closes.
type PracticeScreen struct {
	eng      *engine.Engine
	sessions store.SessionRepo

	sessionID string
	startedAt time.Time

	mode     mode
	keys     []string
	selected int
	scroll   int

	// Tab cycles through unlocked problem types; empty means no filter.
	filter string

	lockedCount int

	detailKey      string
	detail         catalog.QuestionRecord
	showSolution   bool
	viewed         map[string]struct{}
	revealed       map[string]struct{}
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)

// New creates the practice screen over the current unlocked set.
func New(eng *engine.Engine, sessions store.SessionRepo) *PracticeScreen {
	p := &PracticeScreen{
		eng:       eng,
		sessions:  sessions,
		sessionID: uuid.New().String(),
		startedAt: time.Now(),
		viewed:    make(map[string]struct{}),
		revealed:  make(map[string]struct{}),
	}
	p.reload()
	return p
}

// reload rebuilds the visible question list for the current filter.
func (p *PracticeScreen) reload() {
	var pool map[string]catalog.QuestionRecord
	if p.filter == "" {
		pool = p.eng.AllQuestions()
	} else {
		pool = p.eng.QuestionsForProblemType(p.filter)
	}

	p.keys = p.keys[:0]
	p.lockedCount = 0
	for key, q := range pool {
		if p.eng.IsAvailable(q) {
			p.keys = append(p.keys, key)
		} else {
			p.lockedCount++
		}
	}
	sort.Strings(p.keys)
	if p.selected >= len(p.keys) {
		p.selected = 0
	}
	p.scroll = 0
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.mode == modeDetail {
		switch kmsg.String() {
		case "s":
			p.showSolution = true
			p.revealed[p.detailKey] = struct{}{}
		case "left", "h", "backspace":
			p.mode = modeList
			p.showSolution = false
		}
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.keys)-1 {
			p.selected++
		}
	case "tab":
		p.cycleFilter()
	case "enter":
		if p.selected < len(p.keys) {
			key := p.keys[p.selected]
			if q, ok := p.eng.Question(key); ok {
				p.detailKey = key
				p.detail = q
				p.mode = modeDetail
				p.showSolution = false
				p.viewed[key] = struct{}{}
			}
		}
	}
	return p, nil
}

// cycleFilter advances through: no filter, then each unlocked problem type.
func (p *PracticeScreen) cycleFilter() {
	unlocked := p.eng.Unlocked()
	if len(unlocked) == 0 {
		return
	}
	if p.filter == "" {
		p.filter = unlocked[0]
	} else {
		next := ""
		for i, pt := range unlocked {
			if pt == p.filter && i+1 < len(unlocked) {
				next = unlocked[i+1]
				break
			}
		}
		p.filter = next
	}
	p.selected = 0
	p.reload()
}

// OnClose persists the session summary. Sessions where nothing was opened
// are not worth recording.
func (p *PracticeScreen) OnClose() tea.Cmd {
	if len(p.viewed) == 0 {
		return nil
	}
	rec := &store.SessionRecord{
		SessionID:         p.sessionID,
		StartedAt:         p.startedAt,
		EndedAt:           time.Now(),
		DurationMinutes:   int(time.Since(p.startedAt).Minutes()),
		TopicFilter:       p.filter,
		QuestionsViewed:   len(p.viewed),
		SolutionsRevealed: len(p.revealed),
	}
	repo := p.sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = repo.Append(ctx, rec)
		return nil
	}
}

func (p *PracticeScreen) View(width, height int) string {
	if p.mode == modeDetail {
		return p.viewDetail(width, height)
	}
	return p.viewList(width, height)
}

func (p *PracticeScreen) viewList(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("%d available", len(p.keys))
	if p.lockedCount > 0 {
		header += theme.Hint.Render(fmt.Sprintf("  (%d locked)", p.lockedCount))
	}
	if p.filter != "" {
		header += "  " + theme.Selected.Render("filter: "+p.filter)
	}
	b.WriteString("  " + header + "\n\n")

	if len(p.keys) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing unlocked yet. Ask your teacher for a schedule update."))
		return b.String()
	}

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	if p.selected < p.scroll {
		p.scroll = p.selected
	}
	if p.selected >= p.scroll+visible {
		p.scroll = p.selected - visible + 1
	}

	end := p.scroll + visible
	if end > len(p.keys) {
		end = len(p.keys)
	}
	for i := p.scroll; i < end; i++ {
		key := p.keys[i]
		q, _ := p.eng.Question(key)
		line := fmt.Sprintf("%s  %s", key, theme.Hint.Render(questionMeta(q)))
		if i == p.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}
	return b.String()
}

func (p *PracticeScreen) viewDetail(width, height int) string {
	var b strings.Builder
	q := p.detail

	b.WriteString(theme.Title.Render(p.detailKey) + "\n")
	meta := questionMeta(q)
	b.WriteString(theme.Subtitle.Render(meta) + "\n\n")

	for i, part := range q.Parts {
		label := fmt.Sprintf("(%c)", 'a'+i)
		marks := fmt.Sprintf("[%d marks]", part.Marks)
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %s %s %s", label, part.Text, theme.Hint.Render(marks))) + "\n")
		if p.showSolution && len(part.Solution) > 0 {
			for _, step := range part.Solution {
				b.WriteString(theme.Unlocked.Render("      "+step) + "\n")
			}
		}
	}

	if !p.showSolution {
		b.WriteString("\n" + theme.Hint.Render("  Press s to reveal the solution"))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// questionMeta builds the one-line description shown next to a question.
func questionMeta(q catalog.QuestionRecord) string {
	parts := fmt.Sprintf("%d part", len(q.Parts))
	if len(q.Parts) != 1 {
		parts += "s"
	}
	meta := parts
	if q.Section != "" {
		meta = q.Section + ", " + meta
	}
	if q.TotalMarks > 0 {
		meta += fmt.Sprintf(", %d marks", q.TotalMarks)
	}
	return meta
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

// KeyHints provides the footer hints for this screen.
func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.mode == modeDetail {
		return []layout.KeyHint{
			{Key: "s", Description: "Solution"},
			{Key: "←", Description: "Back to list"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Tab", Description: "Filter topic"},
		{Key: "Esc", Description: "End session"},
	}
}
