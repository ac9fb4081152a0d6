// Package signal provides streaming signal generators for the synthesis
// core. Every generator produces one sample per Process call and satisfies
// block.Generator, so it can be wrapped with block.FromGenerator or used as
// the generator side of a modulating block.
package signal
