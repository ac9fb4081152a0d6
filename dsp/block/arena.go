package block

import "errors"

// ErrInvalidHandle is returned when a Handle does not address a block of the arena.
var ErrInvalidHandle = errors.New("block: invalid handle")

// Handle addresses a Block inside an Arena. Handles stay valid for the
// lifetime of the arena.
type Handle int

// Arena owns blocks and schedules them in discrete time steps.
//
// A block may be processed at most once per step. Processing the same
// block a second time before the next Tick is an exclusive-access conflict:
// the block is left untouched, the caller receives (0, false) and the
// conflict is counted. An arena is not safe for concurrent use.
type Arena struct {
	blocks    []*Block
	stamps    []uint64
	clock     uint64
	conflicts uint64
}

// NewArena returns an empty arena positioned at its first time step.
func NewArena() *Arena {
	return &Arena{clock: 1}
}

// Add stores b in the arena and returns its handle.
func (a *Arena) Add(b *Block) Handle {
	a.blocks = append(a.blocks, b)
	a.stamps = append(a.stamps, 0)
	return Handle(len(a.blocks) - 1)
}

// Len returns the number of blocks in the arena.
func (a *Arena) Len() int { return len(a.blocks) }

// Valid reports whether h addresses a non-nil block of the arena.
func (a *Arena) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.blocks) && a.blocks[h] != nil
}

// Block returns the block addressed by h, or nil.
func (a *Arena) Block(h Handle) *Block {
	if !a.Valid(h) {
		return nil
	}
	return a.blocks[h]
}

// Tick starts a new time step.
func (a *Arena) Tick() { a.clock++ }

// Step returns the current time step counter.
func (a *Arena) Step() uint64 { return a.clock }

// Conflicts returns the number of rejected Process calls so far.
func (a *Arena) Conflicts() uint64 { return a.conflicts }

// Prime adds x to the pending input of the block addressed by h. Input
// aimed at a block that was already processed in the current step is
// dropped so it cannot leak into the next step.
func (a *Arena) Prime(h Handle, x float64) {
	if !a.Valid(h) || a.stamps[h] == a.clock {
		return
	}
	a.blocks[h].Prime(x)
}

// Process runs the block addressed by h for the current step. It returns
// false, without touching the block, if h is invalid or the block was
// already processed in this step.
func (a *Arena) Process(h Handle) (float64, bool) {
	if !a.Valid(h) {
		return 0, false
	}
	if a.stamps[h] == a.clock {
		a.conflicts++
		return 0, false
	}
	a.stamps[h] = a.clock
	return a.blocks[h].Process(), true
}
