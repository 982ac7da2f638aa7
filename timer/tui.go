// Package timer operates the recording session stopwatch: the
// pause-aware clock, the section list, and the terminal recorder built on
// top of them.
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tourcue/tourcue/config"
	"github.com/tourcue/tourcue/store"
)

// refreshInterval is how often the elapsed display is redrawn while the
// clock runs. Redrawing reads the clock but never mutates it; correctness
// does not depend on the cadence.
const refreshInterval = 100 * time.Millisecond

type formMode int

const (
	formNone formMode = iota
	formRename
	formScript
)

// tickMsg drives the elapsed time display refresh.
type tickMsg time.Time

// Recorder is the bubbletea model for a live recording session.
type Recorder struct {
	session *Session
	Opts    *config.App
	db      store.DB

	help     help.Model
	styles   styles
	form     *huh.Form
	formMode formMode
	// formValue is bound to the active huh input.
	formValue string
	selected  int
	status    string
	quitting  bool
}

type styles struct {
	base     lipgloss.Style
	clock    lipgloss.Style
	state    lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	status   lipgloss.Style
}

func newStyles() styles {
	return styles{
		base:     lipgloss.NewStyle().Padding(1, 2),
		clock:    lipgloss.NewStyle().Bold(true),
		state:    lipgloss.NewStyle().Faint(true),
		title:    lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Reverse(true),
		dim:      lipgloss.NewStyle().Faint(true),
		status:   lipgloss.NewStyle().Italic(true),
	}
}

// NewRecorder creates a recorder for a fresh session. The db may be nil
// when the archive is unavailable; exporting still writes the XML file.
func NewRecorder(cfg *config.App, db store.DB) *Recorder {
	return &Recorder{
		session: NewSession(),
		Opts:    cfg,
		db:      db,
		help:    help.New(),
		styles:  newStyles(),
	}
}

// Session exposes the recorder's session, mainly for tests.
func (r *Recorder) Session() *Session {
	return r.session
}

func (r *Recorder) Init() tea.Cmd {
	return r.tick()
}

func (r *Recorder) tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
