package timer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tourcue/tourcue/internal/models"
)

func newTestSession() (*Session, *fakeNow) {
	fn := newFakeNow()
	s := NewSession()
	s.clock.now = fn.now

	return s, fn
}

func TestSessionBoundariesAreContiguous(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()

	intervals := []time.Duration{
		12*time.Second + 500*time.Millisecond,
		27*time.Second + 500*time.Millisecond,
		90 * time.Second,
	}

	for _, d := range intervals {
		fn.advance(d)

		if _, ok := s.MarkBoundary(); !ok {
			t.Fatal("MarkBoundary() refused while the clock is running")
		}
	}

	sections := s.Sections()

	if sections[0].Start != 0 {
		t.Errorf("first section starts at %v, want 0", sections[0].Start)
	}

	for i, sect := range sections {
		if sect.Duration != sect.End-sect.Start {
			t.Errorf(
				"section %d: duration %v != end-start %v",
				i, sect.Duration, sect.End-sect.Start,
			)
		}

		if i == 0 {
			continue
		}

		if sect.Start != sections[i-1].End {
			t.Errorf(
				"section %d starts at %v but section %d ends at %v",
				i, sect.Start, i-1, sections[i-1].End,
			)
		}
	}
}

func TestSessionMarkBoundaryBeforeStartIsNoOp(t *testing.T) {
	s, _ := newTestSession()

	if _, ok := s.MarkBoundary(); ok {
		t.Error("MarkBoundary() recorded a section before the clock ever ran")
	}

	if s.Len() != 0 {
		t.Errorf("section count = %d, want 0", s.Len())
	}
}

func TestSessionMarkBoundaryWhilePaused(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()
	fn.advance(10 * time.Second)
	s.Clock().Pause()

	// time has accrued, so marking while paused is allowed
	sect, ok := s.MarkBoundary()
	if !ok {
		t.Fatal("MarkBoundary() refused after time accrued")
	}

	if sect.End != 10 {
		t.Errorf("section ends at %v, want 10", sect.End)
	}
}

func TestSessionDefaultTitles(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()

	for i := 1; i <= 3; i++ {
		fn.advance(time.Second)
		s.MarkBoundary()
	}

	want := []string{"Section 1", "Section 2", "Section 3"}

	for i, sect := range s.Sections() {
		if sect.Title != want[i] {
			t.Errorf("section %d title = %q, want %q", i, sect.Title, want[i])
		}
	}
}

func TestSessionRename(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()
	fn.advance(5 * time.Second)
	s.MarkBoundary()

	table := []struct {
		name      string
		title     string
		wantErr   bool
		wantTitle string
	}{
		{"valid title", "Entrance Hall", false, "Entrance Hall"},
		{"trims whitespace", "  Rotunda  ", false, "Rotunda"},
		{"empty rejected", "", true, "Rotunda"},
		{"whitespace rejected", "   ", true, "Rotunda"},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Rename(0, tc.title)

			if tc.wantErr && err == nil {
				t.Fatal("expected an error, got none")
			}

			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := s.Sections()[0].Title; got != tc.wantTitle {
				t.Errorf("title = %q, want %q", got, tc.wantTitle)
			}
		})
	}

	if err := s.Rename(5, "Out of range"); err == nil {
		t.Error("renaming a missing section should fail")
	}
}

func TestSessionRenameKeepsTiming(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()
	fn.advance(8 * time.Second)
	s.MarkBoundary()

	before := s.Sections()[0]

	if err := s.Rename(0, "Gallery"); err != nil {
		t.Fatal(err)
	}

	after := s.Sections()[0]
	before.Title = "Gallery"

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("rename changed more than the title (-want +got):\n%s", diff)
	}
}

func TestSessionSetScript(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()
	fn.advance(time.Second)
	s.MarkBoundary()

	if err := s.SetScript(0, "Welcome to the museum."); err != nil {
		t.Fatal(err)
	}

	if got := s.Sections()[0].Script; got != "Welcome to the museum." {
		t.Errorf("script = %q", got)
	}

	if err := s.SetScript(3, "nope"); err == nil {
		t.Error("setting a script on a missing section should fail")
	}
}

func TestSessionDeleteKeepsNeighbourTiming(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()

	for i := 0; i < 3; i++ {
		fn.advance(10 * time.Second)
		s.MarkBoundary()
	}

	second := s.Sections()[1]
	third := s.Sections()[2]

	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}

	got := s.Sections()

	want := []models.Section{second, third}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("deletion changed surviving sections (-want +got):\n%s", diff)
	}

	// the cursor does not rewind: the next boundary still starts where
	// the last recorded section ended
	fn.advance(10 * time.Second)

	sect, ok := s.MarkBoundary()
	if !ok {
		t.Fatal("MarkBoundary() refused after delete")
	}

	if sect.Start != third.End {
		t.Errorf("next section starts at %v, want %v", sect.Start, third.End)
	}
}

func TestSessionDeleteOutOfRange(t *testing.T) {
	s, _ := newTestSession()

	if err := s.Delete(0); err == nil {
		t.Error("deleting from an empty session should fail")
	}
}

func TestSessionReset(t *testing.T) {
	s, fn := newTestSession()

	s.Clock().Start()
	fn.advance(time.Minute)
	s.MarkBoundary()
	fn.advance(time.Minute)
	s.MarkBoundary()

	s.Reset()

	if s.Len() != 0 {
		t.Errorf("section count after reset = %d, want 0", s.Len())
	}

	if got := s.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after reset = %v, want 0", got)
	}

	// a new recording starts from zero again
	s.Clock().Start()
	fn.advance(4 * time.Second)

	sect, ok := s.MarkBoundary()
	if !ok {
		t.Fatal("MarkBoundary() refused after reset")
	}

	if sect.Start != 0 {
		t.Errorf("first section after reset starts at %v, want 0", sect.Start)
	}
}
