// Package beat computes beat offsets for a tempo and renders them as audio.
package beat

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// MsPerMinute is the number of milliseconds in one minute.
const MsPerMinute = 60000.0

// MaxBeats bounds the length of a generated sequence.
const MaxBeats = 1 << 24

// ErrInvalidInput is returned for a non-positive tempo or a negative duration.
var ErrInvalidInput = errors.New("invalid input")

// Sequence is an ordered list of beat offsets in milliseconds from the start.
type Sequence []float64

// Interval returns the length of one beat in milliseconds.
func Interval(tempo int) float64 {
	return MsPerMinute / float64(tempo)
}

// Validate checks tempo and duration without computing anything.
func Validate(tempo, duration int) error {
	if tempo <= 0 {
		return errors.Wrapf(ErrInvalidInput, "tempo must be positive, got %d", tempo)
	}
	if duration < 0 {
		return errors.Wrapf(ErrInvalidInput, "duration must not be negative, got %d", duration)
	}
	return nil
}

// Generate returns the offsets of every beat that starts before duration ms.
func Generate(tempo, duration int) (Sequence, error) {
	if err := Validate(tempo, duration); err != nil {
		return nil, err
	}

	interval := Interval(tempo)
	beats := math.Floor(float64(duration) / interval)
	if beats > MaxBeats {
		return nil, errors.Wrapf(ErrInvalidInput, "%d ms at %d bpm is more than %d beats", duration, tempo, MaxBeats)
	}
	count := int(beats)

	seq := make(Sequence, count)
	for i := range seq {
		seq[i] = interval * float64(i)
	}
	return seq, nil
}

// Encode writes seq as a compact JSON array. An empty sequence encodes as [].
func Encode(seq Sequence) ([]byte, error) {
	if seq == nil {
		seq = Sequence{}
	}
	out, err := json.Marshal([]float64(seq))
	if err != nil {
		return nil, errors.Wrap(err, "encoding beat sequence")
	}
	return out, nil
}

// GenerateJSON is Generate followed by Encode.
func GenerateJSON(tempo, duration int) ([]byte, error) {
	seq, err := Generate(tempo, duration)
	if err != nil {
		return nil, err
	}
	return Encode(seq)
}
