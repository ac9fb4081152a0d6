// Package sound provides Sound, a generator block followed by a serial
// chain of modifier blocks with gain staging, mute and pause.
//
// Mute and pause differ. A paused sound returns 0 and its blocks do not
// advance. A muted sound still runs its whole chain every step and only
// discards the result, so unmuting resumes from correctly evolved filter
// and oscillator state.
package sound
