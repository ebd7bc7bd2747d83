package beat

import (
	"io"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Format is the audio format used for rendered and played click tracks.
var Format = beep.Format{
	SampleRate:  44100,
	NumChannels: 2,
	Precision:   2,
}

const (
	clickLength = 30 * time.Millisecond
	clickGain   = 0.6
	clickDecay  = 5

	accentFreq = 1760.0
	normalFreq = 880.0
)

// SamplesAt converts a millisecond offset to a frame index at sr.
func SamplesAt(sr beep.SampleRate, ms float64) int {
	return int(ms * float64(sr) / 1000)
}

// clickTrack streams silence with a short decaying sine at every beat start.
// A click stops early when the next beat or the end of the track arrives.
type clickTrack struct {
	starts []int
	sig    TimeSignature
	sr     float64
	clickN int
	total  int

	pos  int
	beat int // index of the last beat that started, -1 before the first
}

// ClickTrack returns a streamer of exactly SamplesAt(duration) frames that
// clicks on every offset in seq. The first beat of each measure of sig is
// pitched higher.
func ClickTrack(seq Sequence, duration int, sig TimeSignature, sr beep.SampleRate) beep.Streamer {
	if sig.Beats <= 0 {
		sig = CommonTime
	}
	starts := make([]int, len(seq))
	for i, offset := range seq {
		starts[i] = SamplesAt(sr, offset)
	}
	return &clickTrack{
		starts: starts,
		sig:    sig,
		sr:     float64(sr),
		clickN: sr.N(clickLength),
		total:  SamplesAt(sr, float64(duration)),
		beat:   -1,
	}
}

func (c *clickTrack) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for n < len(samples) && c.pos < c.total {
		for c.beat+1 < len(c.starts) && c.pos >= c.starts[c.beat+1] {
			c.beat++
		}
		v := 0.0
		if c.beat >= 0 {
			if i := c.pos - c.starts[c.beat]; i < c.clickN {
				v = c.sample(i, c.beat%c.sig.Beats == 0)
			}
		}
		samples[n][0] = v
		samples[n][1] = v
		n++
		c.pos++
	}
	return n, true
}

func (c *clickTrack) Err() error { return nil }

func (c *clickTrack) sample(i int, accent bool) float64 {
	freq := normalFreq
	if accent {
		freq = accentFreq
	}
	t := float64(i) / float64(c.clickN)
	env := math.Exp(-clickDecay * t)
	return clickGain * env * math.Sin(2*math.Pi*freq*float64(i)/c.sr)
}

// WriteWAV renders the click track for seq into w as a 16-bit stereo WAV.
func WriteWAV(w io.WriteSeeker, seq Sequence, duration int, sig TimeSignature) error {
	track := ClickTrack(seq, duration, sig, Format.SampleRate)
	if err := wav.Encode(w, track, Format); err != nil {
		return errors.Wrap(err, "encoding click track")
	}
	return nil
}
