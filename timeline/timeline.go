// Package timeline serializes a recorded section list into an xmeml
// (FCP7 XML) document that DaVinci Resolve and other non-linear editors
// import as a sequence of clips with markers.
//
// The document is modelled as structs and marshalled with
// xml.MarshalIndent; elements appear in the order the importers expect.
// Every timecode is quantized to whole frames by truncation so that a
// re-export of the same sections is byte-for-byte identical.
package timeline

import (
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"

	"github.com/tourcue/tourcue/internal/models"
	"github.com/tourcue/tourcue/internal/timeutil"
)

// FrameRates are the project frame rates the exporter accepts.
var FrameRates = []int{24, 25, 30, 60}

const xmemlVersion = "4"

type document struct {
	XMLName  xml.Name `xml:"xmeml"`
	Version  string   `xml:"version,attr"`
	Sequence sequence `xml:"sequence"`
}

type sequence struct {
	Name     string   `xml:"name"`
	Duration int      `xml:"duration"`
	Rate     rate     `xml:"rate"`
	Timecode timecode `xml:"timecode"`
	Media    media    `xml:"media"`
}

// rate declares the fixed project frame rate. NTSC (drop-frame) timecode
// is never used.
type rate struct {
	Timebase int    `xml:"timebase"`
	NTSC     string `xml:"ntsc"`
}

type timecode struct {
	Rate   rate   `xml:"rate"`
	String string `xml:"string"`
	Frame  int    `xml:"frame"`
}

type media struct {
	Video video `xml:"video"`
}

type video struct {
	Track track `xml:"track"`
}

type track struct {
	ClipItems []clipItem `xml:"clipitem"`
}

// clipItem is one section on the timeline. In and Out are clip-local
// (a freshly trimmed full-length clip, so In is always frame 0); Start
// and End are timeline-absolute frame positions.
type clipItem struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name"`
	Duration int    `xml:"duration"`
	Rate     rate   `xml:"rate"`
	In       int    `xml:"in"`
	Out      int    `xml:"out"`
	Start    int    `xml:"start"`
	End      int    `xml:"end"`
	Marker   marker `xml:"marker"`
}

// marker carries the section name onto the clip with a human-readable
// duration comment.
type marker struct {
	Name    string `xml:"name"`
	Comment string `xml:"comment"`
	In      int    `xml:"in"`
	Out     int    `xml:"out"`
}

// Serialize converts an ordered section list into an xmeml document
// string. An empty section list produces a valid zero-clip, zero-duration
// document.
func Serialize(
	sections []models.Section,
	fps int,
	projectName string,
) (string, error) {
	if !slices.Contains(FrameRates, fps) {
		return "", fmt.Errorf(
			"unsupported frame rate %d: must be one of %v", fps, FrameRates,
		)
	}

	r := rate{Timebase: fps, NTSC: "FALSE"}

	var total int
	if len(sections) > 0 {
		total = timeutil.ToFrames(sections[len(sections)-1].End, fps)
	}

	doc := document{
		Version: xmemlVersion,
		Sequence: sequence{
			Name:     projectName,
			Duration: total,
			Rate:     r,
			Timecode: timecode{
				Rate:   r,
				String: "00:00:00:00",
				Frame:  0,
			},
		},
	}

	for i, sect := range sections {
		start := timeutil.ToFrames(sect.Start, fps)
		end := timeutil.ToFrames(sect.End, fps)
		frames := timeutil.ToFrames(sect.Duration, fps)

		item := clipItem{
			ID:       "clipitem-" + strconv.Itoa(i+1),
			Name:     sect.Title,
			Duration: frames,
			Rate:     r,
			In:       0,
			Out:      frames,
			Start:    start,
			End:      end,
			Marker: marker{
				Name:    sect.Title,
				Comment: "Duration: " + timeutil.FormatTime(sect.Duration),
				In:      start,
				Out:     end,
			},
		}

		doc.Sequence.Media.Video.Track.ClipItems = append(
			doc.Sequence.Media.Video.Track.ClipItems,
			item,
		)
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling timeline: %w", err)
	}

	return xml.Header + string(b) + "\n", nil
}
