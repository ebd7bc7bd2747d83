package main

import (
	"context"
	"errors"
	"testing"

	"github.com/dimfu/beatgen/internal/beat"
	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeatAt(t *testing.T) {
	seq, err := beat.Generate(120, 4000)
	require.NoError(t, err)
	sig := beat.TimeSignature{Beats: 3, NoteValue: 4}

	cases := []struct {
		elapsed   float64
		n, inMeas int
	}{
		{0, 1, 1},
		{499, 1, 1},
		{500, 2, 2},
		{1000, 3, 3},
		{1500, 4, 1},
		{3999, 8, 2},
		{9000, 8, 2},
	}
	for _, tc := range cases {
		n, m := beatAt(seq, 120, sig, tc.elapsed)
		assert.Equal(t, tc.n, n, "elapsed=%v", tc.elapsed)
		assert.Equal(t, tc.inMeas, m, "elapsed=%v", tc.elapsed)
	}
}

func TestBeatAtEmpty(t *testing.T) {
	n, m := beatAt(nil, 120, beat.CommonTime, 10)
	assert.Zero(t, n)
	assert.Zero(t, m)
}

func TestNewAudioPlayerRejectsTempoOutOfRange(t *testing.T) {
	for _, tempo := range []int{0, -1, MAX_TEMPO, 1000} {
		_, err := NewAudioPlayer(tempo, 1000, beat.CommonTime, nil)
		assert.Error(t, err, "tempo=%d", tempo)
	}

	ap, err := NewAudioPlayer(120, 2000, beat.CommonTime, nil)
	require.NoError(t, err)
	assert.Len(t, ap.seq, 4)
}

func TestKeyAction(t *testing.T) {
	stop, err := keyAction(keyboard.KeyEvent{Key: keyboard.KeyCtrlC})
	assert.True(t, stop)
	assert.True(t, errors.Is(err, context.Canceled))

	stop, err = keyAction(keyboard.KeyEvent{Key: keyboard.KeyEsc})
	assert.True(t, stop)
	assert.NoError(t, err)

	stop, err = keyAction(keyboard.KeyEvent{Rune: 'q'})
	assert.True(t, stop)
	assert.NoError(t, err)

	stop, err = keyAction(keyboard.KeyEvent{Rune: 'x'})
	assert.False(t, stop)
	assert.NoError(t, err)

	stop, err = keyAction(keyboard.KeyEvent{Err: errors.New("tty gone")})
	assert.True(t, stop)
	assert.Error(t, err)
}
