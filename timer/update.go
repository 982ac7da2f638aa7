package timer

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/tourcue/tourcue/internal/timeutil"
)

func (r *Recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if os.Getenv("TOURCUE_DEBUG") != "" {
		slog.Info(spew.Sdump(msg))
	}

	if r.form != nil {
		return r.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		// redraw only; the clock computes elapsed time on read
		return r, r.tick()

	case tea.KeyMsg:
		return r.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		r.help.Width = msg.Width

		return r, nil
	}

	return r, nil
}

// updateForm routes messages to the active rename or script form.
func (r *Recorder) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// continue driving the clock display behind the form
	if _, ok := msg.(tickMsg); ok {
		return r, r.tick()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			r.quitting = true
			return r, tea.Batch(tea.ClearScreen, tea.Quit)
		case "esc":
			r.form = nil
			r.formMode = formNone

			return r, nil
		}
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		r.applyForm()

		r.form = nil
		r.formMode = formNone
	}

	return r, cmd
}

func (r *Recorder) applyForm() {
	var err error

	switch r.formMode {
	case formRename:
		err = r.session.Rename(r.selected, r.formValue)
	case formScript:
		err = r.session.SetScript(r.selected, r.formValue)
	case formNone:
	}

	if err != nil {
		r.status = err.Error()
		return
	}

	r.status = fmt.Sprintf("Updated section %d", r.selected+1)
}

func (r *Recorder) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if r.session.Clock().Running() {
			r.session.Clock().Pause()
			r.status = "Paused"
		} else {
			r.session.Clock().Start()
			r.status = "Recording"
		}

		return r, nil

	case key.Matches(msg, defaultKeymap.mark):
		sect, ok := r.session.MarkBoundary()
		if !ok {
			// nothing recorded yet, ignore the stray keypress
			return r, nil
		}

		r.selected = r.session.Len() - 1
		r.status = fmt.Sprintf(
			"%s ends at %s",
			sect.Title,
			timeutil.FormatTime(sect.End),
		)

		return r, nil

	case key.Matches(msg, defaultKeymap.up):
		if r.selected > 0 {
			r.selected--
		}

		return r, nil

	case key.Matches(msg, defaultKeymap.down):
		if r.selected < r.session.Len()-1 {
			r.selected++
		}

		return r, nil

	case key.Matches(msg, defaultKeymap.rename):
		if r.session.Len() == 0 {
			return r, nil
		}

		r.openForm(formRename)

		return r, r.form.Init()

	case key.Matches(msg, defaultKeymap.script):
		if r.session.Len() == 0 {
			return r, nil
		}

		r.openForm(formScript)

		return r, r.form.Init()

	case key.Matches(msg, defaultKeymap.del):
		if err := r.session.Delete(r.selected); err != nil {
			return r, nil
		}

		if r.selected >= r.session.Len() && r.selected > 0 {
			r.selected--
		}

		r.status = "Section deleted (timing of the others is unchanged)"

		return r, nil

	case key.Matches(msg, defaultKeymap.export):
		if err := r.export(); err != nil {
			r.status = err.Error()
			slog.Error("timeline export failed", slog.Any("error", err))
		}

		return r, nil

	case key.Matches(msg, defaultKeymap.reset):
		r.session.Reset()
		r.selected = 0
		r.status = "Session reset"

		return r, nil

	case key.Matches(msg, defaultKeymap.quit):
		r.quitting = true

		return r, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return r, nil
}

func (r *Recorder) openForm(mode formMode) {
	sections := r.session.Sections()

	switch mode {
	case formRename:
		r.formValue = sections[r.selected].Title
		r.form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Section title").
				Value(&r.formValue),
		))
	case formScript:
		r.formValue = sections[r.selected].Script
		r.form = huh.NewForm(huh.NewGroup(
			huh.NewText().
				Title("Script").
				Value(&r.formValue),
		))
	case formNone:
		return
	}

	r.formMode = mode
}
