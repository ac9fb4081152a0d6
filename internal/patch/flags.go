package patch

import "flag"

// RegisterFlags binds the fields of c to flags on fs, using the current
// field values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.SampleRate, "rate", c.SampleRate, "sample rate in Hz")
	fs.Float64Var(&c.Gain, "gain", c.Gain, "channel gain (linear)")
	fs.Float64Var(&c.Frequency, "freq", c.Frequency, "sine voice frequency in Hz")
	fs.Float64Var(&c.Amplitude, "amp", c.Amplitude, "sine voice amplitude, 0 disables the voice")
	fs.Float64Var(&c.TremoloRate, "tremolo-rate", c.TremoloRate, "tremolo rate in Hz, 0 disables tremolo")
	fs.Float64Var(&c.TremoloDepth, "tremolo-depth", c.TremoloDepth, "tremolo depth in [0, 1]")
	fs.Float64Var(&c.Noise, "noise", c.Noise, "noise voice amplitude, 0 disables the voice")
	fs.Float64Var(&c.LowpassHz, "lowpass", c.LowpassHz, "noise lowpass cutoff in Hz")
	fs.Float64Var(&c.HighpassHz, "highpass", c.HighpassHz, "noise highpass cutoff in Hz")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed")
}
