package timeline

import (
	"strings"
	"testing"

	"github.com/tourcue/tourcue/internal/models"
)

func sampleSections() []models.Section {
	return []models.Section{
		{Start: 0, End: 12.5, Duration: 12.5, Title: "Intro"},
		{Start: 12.5, End: 40.0, Duration: 27.5, Title: "Hall"},
	}
}

func TestSerializeTwoSections(t *testing.T) {
	doc, err := Serialize(sampleSections(), 30, "Museum Tour")
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(doc, "<clipitem"); got != 2 {
		t.Fatalf("clipitem count = %d, want 2\n%s", got, doc)
	}

	wantFragments := []string{
		`<xmeml version="4">`,
		"<name>Museum Tour</name>",
		"<duration>1200</duration>", // sequence total: floor(40.0 * 30)
		"<timebase>30</timebase>",
		"<ntsc>FALSE</ntsc>",
		"<string>00:00:00:00</string>",
		`<clipitem id="clipitem-1">`,
		`<clipitem id="clipitem-2">`,
		"<name>Intro</name>",
		"<name>Hall</name>",
		"<comment>Duration: 00:00:12.500</comment>",
		"<comment>Duration: 00:00:27.500</comment>",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(doc, fragment) {
			t.Errorf("document is missing %s\n%s", fragment, doc)
		}
	}
}

func TestSerializeFrameMath(t *testing.T) {
	doc, err := Serialize(sampleSections(), 30, "Museum Tour")
	if err != nil {
		t.Fatal(err)
	}

	clips := strings.Split(doc, "<clipitem")
	if len(clips) != 3 {
		t.Fatalf("expected 2 clipitem blocks, got %d", len(clips)-1)
	}

	first, second := clips[1], clips[2]

	firstWant := []string{
		"<in>0</in>",
		"<out>375</out>",
		"<start>0</start>",
		"<end>375</end>",
		"<duration>375</duration>",
	}

	for _, fragment := range firstWant {
		if !strings.Contains(first, fragment) {
			t.Errorf("first clip is missing %s\n%s", fragment, first)
		}
	}

	secondWant := []string{
		"<in>0</in>", // clip-local range always starts at frame zero
		"<out>825</out>",
		"<start>375</start>",
		"<end>1200</end>",
		"<duration>825</duration>",
	}

	for _, fragment := range secondWant {
		if !strings.Contains(second, fragment) {
			t.Errorf("second clip is missing %s\n%s", fragment, second)
		}
	}
}

func TestSerializeMarkersMirrorClipPosition(t *testing.T) {
	doc, err := Serialize(
		[]models.Section{
			{Start: 2.5, End: 7.25, Duration: 4.75, Title: "Atrium"},
		},
		60,
		"Gaps",
	)
	if err != nil {
		t.Fatal(err)
	}

	// markers carry timeline-absolute frames, same as start/end
	wantFragments := []string{
		"<marker>",
		"<name>Atrium</name>",
		"<in>150</in>",
		"<out>435</out>",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(doc, fragment) {
			t.Errorf("document is missing %s\n%s", fragment, doc)
		}
	}
}

func TestSerializeEmptySectionList(t *testing.T) {
	doc, err := Serialize(nil, 25, "Empty")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(doc, "<clipitem") {
		t.Error("empty session should produce no clipitem elements")
	}

	if !strings.Contains(doc, "<duration>0</duration>") {
		t.Error("empty session should have a zero total duration")
	}

	if !strings.HasPrefix(doc, "<?xml") {
		t.Error("document should start with an XML declaration")
	}
}

func TestSerializeNonContiguousSections(t *testing.T) {
	// deleting a middle section leaves a gap; the survivors keep their
	// original timing in the export
	sections := []models.Section{
		{Start: 10, End: 20, Duration: 10, Title: "Second"},
		{Start: 20, End: 30, Duration: 10, Title: "Third"},
	}

	doc, err := Serialize(sections, 30, "Gapped")
	if err != nil {
		t.Fatal(err)
	}

	wantFragments := []string{
		"<start>300</start>",
		"<end>600</end>",
		"<start>600</start>",
		"<end>900</end>",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(doc, fragment) {
			t.Errorf("document is missing %s\n%s", fragment, doc)
		}
	}
}

func TestSerializeRejectsUnsupportedFrameRate(t *testing.T) {
	for _, fps := range []int{0, 23, 48, 120, -30} {
		if _, err := Serialize(sampleSections(), fps, "Bad"); err == nil {
			t.Errorf("Serialize accepted fps=%d", fps)
		}
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	first, err := Serialize(sampleSections(), 30, "Museum Tour")
	if err != nil {
		t.Fatal(err)
	}

	second, err := Serialize(sampleSections(), 30, "Museum Tour")
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("serializing the same sections twice produced different documents")
	}
}
