// Package block provides the processing node of the synthesis core.
//
// A [Block] pairs one [Generator] with one [Modifier] and combines their
// per-step outputs through an [Interactor]. Blocks run a two-phase cycle:
// any number of [Block.Prime] calls accumulate the pending input, then a
// single [Block.Process] advances both units by one time step and resets
// the pending input to zero.
//
// Blocks are owned by an [Arena] and addressed by stable [Handle] values.
// The arena tracks which blocks were already processed in the current time
// step so that a block referenced from several places cannot be advanced
// twice within one step.
package block
