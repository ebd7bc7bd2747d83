package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dimfu/beatgen/internal/beat"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

const statusRefresh = 50 * time.Millisecond

type AudioPlayer struct {
	seq      beat.Sequence
	duration int
	tempo    int
	sig      beat.TimeSignature
	status   io.Writer
}

func NewAudioPlayer(tempo, duration int, sig beat.TimeSignature, status io.Writer) (*AudioPlayer, error) {
	if !ValidTempo(tempo) {
		return nil, errors.Errorf("tempo is not valid make sure its above %v and below %v", MIN_TEMPO, MAX_TEMPO)
	}
	seq, err := beat.Generate(tempo, duration)
	if err != nil {
		return nil, err
	}
	return &AudioPlayer{
		seq:      seq,
		duration: duration,
		tempo:    tempo,
		sig:      sig,
		status:   status,
	}, nil
}

// beatAt returns the 1-based beat and the 1-based position inside the
// measure that is sounding elapsedMs into the track, or zeros past the end.
func beatAt(seq beat.Sequence, tempo int, sig beat.TimeSignature, elapsedMs float64) (n, inMeasure int) {
	if len(seq) == 0 || elapsedMs < 0 {
		return 0, 0
	}
	i := int(math.Floor(elapsedMs / beat.Interval(tempo)))
	if i >= len(seq) {
		i = len(seq) - 1
	}
	return i + 1, i%sig.Beats + 1
}

// keyAction decides whether a key press ends playback. The keyboard holds
// the terminal in raw mode, so Ctrl+C arrives here instead of as SIGINT.
func keyAction(ev keyboard.KeyEvent) (stop bool, err error) {
	switch {
	case ev.Err != nil:
		return true, errors.Wrap(ev.Err, "reading key")
	case ev.Key == keyboard.KeyCtrlC:
		return true, context.Canceled
	case ev.Key == keyboard.KeyEsc || ev.Rune == 'q':
		return true, nil
	}
	return false, nil
}

// Play blocks until the track ends, ctx is cancelled, or q/Esc is pressed.
func (ap *AudioPlayer) Play(ctx context.Context) error {
	format := beat.Format
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "error while initializing speaker")
	}
	defer speaker.Clear()

	done := make(chan struct{})
	track := beat.ClickTrack(ap.seq, ap.duration, ap.sig, format.SampleRate)
	speaker.Play(beep.Seq(track, beep.Callback(func() {
		close(done)
	})))

	keys, err := keyboard.GetKeys(10)
	if err != nil {
		// No terminal keyboard: only signals and the end of the track stop playback.
		keys = nil
	} else {
		defer keyboard.Close()
	}

	writer := uilive.New()
	writer.Out = ap.status
	writer.Start()
	defer writer.Stop()

	ticker := time.NewTicker(statusRefresh)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case now := <-ticker.C:
			elapsed := float64(now.Sub(start)) / float64(time.Millisecond)
			n, m := beatAt(ap.seq, ap.tempo, ap.sig, elapsed)
			fmt.Fprintf(writer, "%d bpm %s  beat %d/%d  [%d]\n", ap.tempo, ap.sig, n, len(ap.seq), m)
		case ev := <-keys:
			if stop, err := keyAction(ev); stop {
				return err
			}
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
