package beat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type TimeSignature struct {
	Beats     int // number of beats per measure
	NoteValue int // note that represents one beat
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.Beats, ts.NoteValue)
}

var CommonTime = TimeSignature{4, 4}

var TimeSignatures = []TimeSignature{
	{4, 4},
	{3, 4},
	{2, 4},
	{2, 2},
	{3, 8},
	{6, 8},
	{9, 8},
	{12, 8},
	{5, 4},
	{6, 4},
}

// ParseTimeSignature accepts "beats/note" for one of the supported signatures.
func ParseTimeSignature(input string) (TimeSignature, error) {
	parts := strings.Split(input, "/")
	if len(parts) != 2 {
		return TimeSignature{}, errors.Errorf("invalid time signature format %q", input)
	}

	beats, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	noteValue, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return TimeSignature{}, errors.Errorf("invalid number in time signature %q", input)
	}

	for _, ts := range TimeSignatures {
		if ts.Beats == beats && ts.NoteValue == noteValue {
			return ts, nil
		}
	}

	return TimeSignature{}, errors.Errorf("time signature %q not supported", input)
}
