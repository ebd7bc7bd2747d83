package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimfu/beatgen/internal/beat"
	applog "github.com/dimfu/beatgen/internal/log"
	"github.com/pkg/errors"
)

type options struct {
	tempo    int
	duration int
	timesig  string
	preset   string
	save     string
	remove   string
	list     bool
	config   string
	wav      string
	play     bool
	logLevel string

	set map[string]bool
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "usage: beatgen [flags]\n")
		fmt.Fprintf(out, "       beatgen diff [-o out.json] A.json B.json\n\n")
		fmt.Fprintf(out, "Prints the beat offsets in ms for a tempo and duration as a JSON array.\n")
		fmt.Fprintf(out, "Without -tempo or -duration the values are read from stdin.\n\n")
		fs.PrintDefaults()
	}
}

func parseFlags(argv []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}

	fs := flag.NewFlagSet("beatgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	fs.IntVar(&opts.tempo, "tempo", 120, "tempo in beats per minute")
	fs.IntVar(&opts.duration, "duration", 0, "duration in milliseconds")
	fs.StringVar(&opts.timesig, "timesig", beat.CommonTime.String(), "time signature used to accent audio output")
	fs.StringVar(&opts.preset, "preset", "", "load tempo, duration and timesig from a saved preset")
	fs.StringVar(&opts.save, "save", "", "save tempo, duration and timesig as a preset")
	fs.StringVar(&opts.remove, "delete", "", "delete a saved preset")
	fs.BoolVar(&opts.list, "list", false, "list saved presets")
	fs.StringVar(&opts.config, "config", "", "preset file (default $"+envConfigPath+" or ~/"+configFileName+")")
	fs.StringVar(&opts.wav, "wav", "", "also render a click track to this WAV file")
	fs.BoolVar(&opts.play, "play", false, "also play the click track")
	fs.StringVar(&opts.logLevel, "log-level", os.Getenv(envLogLevel), "DEBUG, INFO, WARN, ERROR or NONE")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == exitOK {
		code = exitInterrupted
	}

	stop()
	os.Exit(code)
}

func newLogger(stderr io.Writer, name string) (*applog.Logger, error) {
	level, err := applog.ParseLevel(name)
	return applog.New(stderr, level), err
}

func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(argv) > 0 && argv[0] == "diff" {
		logger, err := newLogger(stderr, os.Getenv(envLogLevel))
		if err != nil {
			logger.Warnf("%v", err)
		}
		return runDiff(argv[1:], stdout, stderr, logger)
	}

	opts, err := parseFlags(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		logger.Warnf("%v", err)
	}

	if err := generate(ctx, opts, stdin, stdout, stderr, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitInterrupted
		}
		logger.Errorf("%v", err)
		return exitFailure
	}
	return exitOK
}

func generate(ctx context.Context, opts *options, stdin io.Reader, stdout, stderr io.Writer, logger *applog.Logger) error {
	var cm *ConfigManager
	if opts.preset != "" || opts.save != "" || opts.remove != "" || opts.list {
		path := ConfigPath(opts.config)
		logger.Debugf("using preset file %s", path)

		var err error
		if cm, err = NewConfigManager(path); err != nil {
			return err
		}
	}

	switch {
	case opts.list:
		for _, p := range cm.Presets {
			fmt.Fprintln(stdout, p)
		}
		return nil
	case opts.remove != "":
		if err := cm.DeletePreset(opts.remove); err != nil {
			return err
		}
		logger.Infof("deleted preset %s", opts.remove)
		return nil
	}

	if opts.preset != "" {
		p := cm.GetPreset(opts.preset)
		if p == nil {
			return errors.Errorf("preset `%v` not found", opts.preset)
		}
		if !opts.set["tempo"] {
			opts.tempo = p.Tempo
		}
		if !opts.set["duration"] {
			opts.duration = p.Duration
		}
		if !opts.set["timesig"] && p.Timesig != "" {
			opts.timesig = p.Timesig
		}
		opts.set["tempo"], opts.set["duration"] = true, true
	}

	interactive := !opts.set["tempo"] || !opts.set["duration"]
	if interactive {
		prompter := NewPrompter(stdin, stderr)
		var err error
		switch {
		case !opts.set["tempo"] && !opts.set["duration"]:
			if opts.tempo, opts.duration, err = prompter.ReadTempoAndDuration(); err != nil {
				return err
			}
		case !opts.set["tempo"]:
			if opts.tempo, err = prompter.Int(promptTempo); err != nil {
				return err
			}
		default:
			if opts.duration, err = prompter.Int(promptDuration); err != nil {
				return err
			}
		}
	}

	sig, err := beat.ParseTimeSignature(opts.timesig)
	if err != nil {
		return err
	}

	seq, err := beat.Generate(opts.tempo, opts.duration)
	if err != nil {
		return err
	}
	out, err := beat.Encode(seq)
	if err != nil {
		return err
	}
	logger.Debugf("%d beats every %gms", len(seq), beat.Interval(opts.tempo))

	if opts.save != "" {
		err := cm.CreatePreset(Preset{
			Key:      opts.save,
			Tempo:    opts.tempo,
			Duration: opts.duration,
			Timesig:  sig.String(),
		})
		if err != nil {
			return err
		}
		logger.Infof("saved preset %s", opts.save)
	}

	if _, err := fmt.Fprintf(stdout, "%s\n", out); err != nil {
		return errors.Wrap(err, "writing output")
	}

	if opts.wav != "" {
		if err := writeWAV(opts.wav, seq, opts.duration, sig); err != nil {
			return err
		}
		logger.Infof("wrote click track to %s", opts.wav)
	}

	if opts.play {
		player, err := NewAudioPlayer(opts.tempo, opts.duration, sig, stderr)
		if err != nil {
			return err
		}
		if err := player.Play(ctx); err != nil {
			return err
		}
	}

	if interactive && isTerminal(stdin) {
		return waitForKey(stderr)
	}
	return nil
}

func writeWAV(path string, seq beat.Sequence, duration int, sig beat.TimeSignature) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating WAV file")
	}
	if err := beat.WriteWAV(f, seq, duration, sig); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing WAV file")
}
