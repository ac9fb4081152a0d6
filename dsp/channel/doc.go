// Package channel mixes sounds into a fixed-size output buffer.
//
// A Channel owns a list of registered sounds keyed by identity. Each call
// to Process renders one processing window (10 ms by default) by stepping
// every sound once per sample, summing the results, applying the channel
// gain and converting to the output sample type.
package channel
