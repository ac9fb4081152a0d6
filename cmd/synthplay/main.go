// Command synthplay plays the demo patch on the default audio device.
//
// Usage:
//
//	synthplay [flags]
//
// Playback stops after -duration or on interrupt. Defaults for -rate,
// -gain, -duration and -log-level may be set through SYNTH_SAMPLE_RATE,
// SYNTH_GAIN, SYNTH_DURATION and SYNTH_LOG_LEVEL.
//
// Examples:
//
//	synthplay -duration 10s
//	synthplay -freq 220 -tremolo-rate 5 -tremolo-depth 0.8
//	synthplay -amp 0 -noise 0.8 -lowpass 1200 -highpass 600
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cwbudde/algo-sound/dsp/channel"
	"github.com/cwbudde/algo-sound/dsp/sampleformat"
	"github.com/cwbudde/algo-sound/dsp/stream"
	"github.com/cwbudde/algo-sound/internal/cli"
	"github.com/cwbudde/algo-sound/internal/patch"
	"github.com/ebitengine/oto/v3"
)

type options struct {
	duration   time.Duration
	bufferSize time.Duration
	logLevel   string
	patch      patch.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "synthplay: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := cli.NewLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}

	p, err := patch.Build(opts.patch)
	if err != nil {
		return err
	}

	ch := patch.NewChannel(p, sampleformat.Float32, channel.WithLogger(logger))
	r := stream.NewReader(ch)

	otx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(opts.patch.SampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.bufferSize,
	})
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	player := otx.NewPlayer(r)
	defer player.Close()

	logger.Info("playing", "rate", opts.patch.SampleRate, "voices", ch.Len(), "duration", opts.duration)
	player.Play()

	err = wait(ctx, opts.duration, func() error { return player.Err() })

	logger.Info("stopped", "samples", r.Samples())
	return err
}

// wait blocks until d elapses or ctx is done, polling failed for a player
// error. A non-positive d waits for ctx only.
func wait(ctx context.Context, d time.Duration, failed func() error) error {
	var timeout <-chan time.Time
	if d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		timeout = t.C
	}

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			return nil
		case <-tick.C:
			if err := failed(); err != nil {
				return fmt.Errorf("playback: %w", err)
			}
		}
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	envFile := ".env"
	for i, a := range args {
		if v, ok := strings.CutPrefix(strings.TrimLeft(a, "-"), "env="); ok {
			envFile = v
		} else if (a == "-env" || a == "--env") && i+1 < len(args) {
			envFile = args[i+1]
		}
	}
	if err := cli.LoadEnv(envFile); err != nil {
		return options{}, err
	}

	opts := options{patch: patch.DefaultConfig()}

	var err error
	if opts.patch.SampleRate, err = cli.Float(cli.EnvSampleRate, opts.patch.SampleRate); err != nil {
		return options{}, err
	}
	if opts.patch.Gain, err = cli.Float(cli.EnvGain, opts.patch.Gain); err != nil {
		return options{}, err
	}
	duration, err := cli.Duration(cli.EnvDuration, 5*time.Second)
	if err != nil {
		return options{}, err
	}

	fs := flag.NewFlagSet("synthplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("env", envFile, "optional .env file with SYNTH_* defaults")
	fs.DurationVar(&opts.duration, "duration", duration, "playback length, 0 plays until interrupted")
	fs.DurationVar(&opts.bufferSize, "buffer", 0, "device buffer size, 0 uses the backend default")
	fs.StringVar(&opts.logLevel, "log-level", cli.String(cli.EnvLogLevel, "info"), "log level (debug, info, warn, error)")
	opts.patch.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: synthplay [flags]\n\n")
		fmt.Fprintf(stderr, "Plays the demo patch on the default audio device.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}
