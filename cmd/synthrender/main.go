// Command synthrender renders the demo patch to a mono WAV file.
//
// Usage:
//
//	synthrender [flags]
//
// Defaults for -rate, -gain, -duration and -log-level may be set through
// SYNTH_SAMPLE_RATE, SYNTH_GAIN, SYNTH_DURATION and SYNTH_LOG_LEVEL, either
// in the environment or in the file named by -env.
//
// Examples:
//
//	synthrender -out tone.wav -noise 0
//	synthrender -duration 5s -tremolo-rate 6 -normalize -peak-db -1
//	synthrender -bits 24 -amp 0 -lowpass 2000 -highpass 500
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/algo-sound/dsp/analysis"
	"github.com/cwbudde/algo-sound/dsp/channel"
	"github.com/cwbudde/algo-sound/dsp/core"
	"github.com/cwbudde/algo-sound/dsp/sampleformat"
	"github.com/cwbudde/algo-sound/dsp/signal"
	"github.com/cwbudde/algo-sound/dsp/wavout"
	"github.com/cwbudde/algo-sound/internal/cli"
	"github.com/cwbudde/algo-sound/internal/patch"
)

type options struct {
	out       string
	duration  time.Duration
	bits      int
	normalize bool
	peakDB    float64
	logLevel  string
	patch     patch.Config
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "synthrender: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
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

	samples := render(p, opts.duration, logger)
	if len(samples) == 0 {
		return fmt.Errorf("duration %v yields no samples at %v Hz", opts.duration, opts.patch.SampleRate)
	}

	if opts.normalize {
		samples, err = signal.NormalizeDB(samples, opts.peakDB)
		if err != nil {
			return err
		}
	}

	summary, err := analysis.Summarize(samples, opts.patch.SampleRate)
	if err != nil {
		return err
	}

	err = wavout.WriteFile(opts.out, samples,
		wavout.WithSampleRate(int(opts.patch.SampleRate)),
		wavout.WithBitDepth(opts.bits),
	)
	if err != nil {
		return err
	}

	logger.Info("rendered",
		"file", opts.out,
		"samples", len(samples),
		"peak_db", fmt.Sprintf("%.2f", summary.PeakDB),
		"rms_db", fmt.Sprintf("%.2f", summary.RMSDB),
		"dominant_hz", fmt.Sprintf("%.1f", summary.DominantFrequency),
	)

	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	// -env has to be known before the env-backed defaults are read.
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
	duration, err := cli.Duration(cli.EnvDuration, 2*time.Second)
	if err != nil {
		return options{}, err
	}

	fs := flag.NewFlagSet("synthrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("env", envFile, "optional .env file with SYNTH_* defaults")
	fs.StringVar(&opts.out, "out", "out.wav", "output WAV file")
	fs.DurationVar(&opts.duration, "duration", duration, "render length")
	fs.IntVar(&opts.bits, "bits", 16, "PCM bit depth (16, 24, 32)")
	fs.BoolVar(&opts.normalize, "normalize", false, "normalize the rendered peak to -peak-db")
	fs.Float64Var(&opts.peakDB, "peak-db", -1, "normalization target in dBFS")
	fs.StringVar(&opts.logLevel, "log-level", cli.String(cli.EnvLogLevel, "info"), "log level (debug, info, warn, error)")
	opts.patch.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: synthrender [flags]\n\n")
		fmt.Fprintf(stderr, "Renders the demo patch to a mono WAV file.\n\n")
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

// render pulls whole processing windows from a channel until d is covered
// and trims the result to the exact sample count.
func render(p *patch.Patch, d time.Duration, logger *slog.Logger) []float64 {
	if d <= 0 {
		return nil
	}

	total := core.ApplyProcessorOptions(
		core.WithSampleRate(p.Config().SampleRate),
		core.WithProcessTime(d),
	).BlockSize()

	ch := patch.NewChannel(p, sampleformat.Float64, channel.WithLogger(logger))
	if len(ch.Output()) == 0 {
		return nil
	}

	out := make([]float64, 0, total+len(ch.Output()))
	for len(out) < total {
		ch.Process()
		out = append(out, ch.Output()...)
	}

	logger.Debug("render finished", "windows", len(out)/len(ch.Output()), "voices", ch.Len())
	return out[:total]
}
