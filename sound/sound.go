// Package sound plays synthesized audio through the system speaker.
package sound

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

var errInvalidFormat = errors.New(
	"audio must be in mp3, ogg, flac, or wav format",
)

type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

func decode(r io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".mp3":
		return mp3.Decode(r)
	case ".ogg":
		return vorbis.Decode(r)
	case ".flac":
		return flac.Decode(r)
	case ".wav":
		return wav.Decode(r)
	default:
		return nil, beep.Format{}, errInvalidFormat
	}
}

// Play decodes the audio bytes according to the file extension and blocks
// until playback finishes.
func Play(audio []byte, ext string) error {
	stream, format, err := decode(nopCloser{bytes.NewReader(audio)}, ext)
	if err != nil {
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return err
	}

	defer speaker.Close()

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	return nil
}
