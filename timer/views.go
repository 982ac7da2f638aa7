package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/tourcue/tourcue/internal/timeutil"
)

func (r *Recorder) stateLabel() string {
	switch {
	case r.session.Clock().Running():
		return "[Recording]"
	case r.session.Clock().Idle():
		return "[Idle]"
	default:
		return "[Paused]"
	}
}

func (r *Recorder) clockView() string {
	var s strings.Builder

	s.WriteString(r.styles.title.Render(r.Opts.ProjectName))
	s.WriteString("  ")
	s.WriteString(r.styles.state.Render(r.stateLabel()))
	s.WriteString("\n\n")
	s.WriteString(
		r.styles.clock.Render(
			timeutil.FormatDuration(r.session.Clock().Elapsed()),
		),
	)

	return s.String()
}

func (r *Recorder) sectionsView() string {
	sections := r.session.Sections()

	if len(sections) == 0 {
		return r.styles.dim.Render(
			"No sections yet. Start the clock and press enter at each boundary.",
		)
	}

	var s strings.Builder

	for i, sect := range sections {
		line := fmt.Sprintf(
			"%2d. %-24s %s → %s  (%s)",
			i+1,
			sect.Title,
			timeutil.FormatTime(sect.Start),
			timeutil.FormatTime(sect.End),
			timeutil.FormatTime(sect.Duration),
		)

		if sect.Script != "" {
			line += "  ✎"
		}

		if i == r.selected {
			line = r.styles.selected.Render(line)
		}

		s.WriteString(line)

		if i < len(sections)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (r *Recorder) helpView() string {
	return r.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.mark,
		defaultKeymap.rename,
		defaultKeymap.script,
		defaultKeymap.del,
		defaultKeymap.export,
		defaultKeymap.quit,
	})
}

func (r *Recorder) View() string {
	if r.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(r.clockView())
	s.WriteString("\n\n")
	s.WriteString(r.sectionsView())

	if r.form != nil {
		s.WriteString("\n\n")
		s.WriteString(r.form.View())
	}

	if r.status != "" {
		s.WriteString("\n\n")
		s.WriteString(r.styles.status.Render(r.status))
	}

	s.WriteString("\n\n")
	s.WriteString(r.helpView())

	return r.styles.base.Render(s.String())
}
