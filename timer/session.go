package timer

import (
	"fmt"
	"strings"

	"github.com/tourcue/tourcue/internal/models"
)

// Session owns the clock and the ordered list of sections recorded so far.
// Boundary events always append: each new section starts where the previous
// one ended, so the list stays contiguous until a section is deleted.
type Session struct {
	clock    *Clock
	sections []models.Section
	// nextStart is where the next boundary event will begin: the end of
	// the last section, or 0 for a fresh session.
	nextStart float64
}

// NewSession returns a session with an idle clock and no sections.
func NewSession() *Session {
	return &Session{clock: NewClock()}
}

// Clock exposes the session's stopwatch.
func (s *Session) Clock() *Clock {
	return s.clock
}

// Elapsed reports the session's elapsed seconds.
func (s *Session) Elapsed() float64 {
	return s.clock.Elapsed().Seconds()
}

// MarkBoundary closes the current section at the present elapsed time and
// advances the cursor so the next section starts at the same instant. It
// reports whether a section was recorded: marking is a no-op before the
// clock has ever run, which guards against a zero-length first section
// from a stray keypress.
func (s *Session) MarkBoundary() (models.Section, bool) {
	end := s.Elapsed()

	if !s.clock.Running() && end == 0 {
		return models.Section{}, false
	}

	sect := models.Section{
		Start:    s.nextStart,
		End:      end,
		Duration: end - s.nextStart,
		Title:    fmt.Sprintf("Section %d", len(s.sections)+1),
	}

	s.sections = append(s.sections, sect)
	s.nextStart = end

	return sect, true
}

// Rename replaces the title of the section at index i. Titles that are
// empty after trimming are rejected and the prior title is retained.
func (s *Session) Rename(i int, title string) error {
	if i < 0 || i >= len(s.sections) {
		return errNoSuchSection
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle
	}

	s.sections[i].Title = title

	return nil
}

// SetScript attaches narration text to the section at index i. The content
// is unconstrained.
func (s *Session) SetScript(i int, text string) error {
	if i < 0 || i >= len(s.sections) {
		return errNoSuchSection
	}

	s.sections[i].Script = text

	return nil
}

// Delete removes the section at index i. Neighbouring sections keep their
// original start and end times and the boundary cursor does not move, so
// removing a middle section leaves a gap in the exported timeline. This
// mirrors the way sections are actually cut in the field: timing always
// refers to the recorded audio, not to the surviving list.
func (s *Session) Delete(i int) error {
	if i < 0 || i >= len(s.sections) {
		return errNoSuchSection
	}

	s.sections = append(s.sections[:i], s.sections[i+1:]...)

	return nil
}

// Reset discards all sections, rewinds the boundary cursor, and resets the
// clock to idle.
func (s *Session) Reset() {
	s.sections = nil
	s.nextStart = 0
	s.clock.Reset()
}

// Sections returns a copy of the recorded sections in order.
func (s *Session) Sections() []models.Section {
	out := make([]models.Section, len(s.sections))
	copy(out, s.sections)

	return out
}

// Len reports the number of recorded sections.
func (s *Session) Len() int {
	return len(s.sections)
}
