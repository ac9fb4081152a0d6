package core

import "time"

// DefaultProcessTime is the processing window a mixer is sized for
// until told otherwise.
const DefaultProcessTime = 10 * time.Millisecond

// ProcessorConfig defines common processing settings.
type ProcessorConfig struct {
	SampleRate  float64
	ProcessTime time.Duration
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline and streaming use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  48000,
		ProcessTime: DefaultProcessTime,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithProcessTime sets the length of one processing window.
func WithProcessTime(d time.Duration) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if d > 0 {
			cfg.ProcessTime = d
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BlockSize returns the number of samples in one processing window.
func (cfg ProcessorConfig) BlockSize() int {
	return SampleCount(cfg.ProcessTime, cfg.SampleRate)
}

// SampleCount converts a duration to a sample count at sampleRate,
// truncating toward zero. Non-positive inputs yield 0.
func SampleCount(d time.Duration, sampleRate float64) int {
	n := d.Seconds() * sampleRate
	if n <= 0 || !IsFinite(n) {
		return 0
	}
	return int(n)
}
