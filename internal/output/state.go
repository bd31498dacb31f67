// SPDX-License-Identifier: MIT
package output

// State carries the emitter's memory between builds. The caller owns it and
// passes the same value to every build of a session.
type State struct {
	HasWritten  bool
	PrevEnabled bool
}

// ShouldWrite reports whether a build with output enabled or disabled should
// write: the first enabled build does, and so does an enabled build that
// follows a disabled one.
func (s *State) ShouldWrite(enabled bool) bool {
	return (enabled && !s.HasWritten) || (s.HasWritten && enabled && !s.PrevEnabled)
}

// Record stores the outcome of a build
func (s *State) Record(enabled, written bool) {
	s.PrevEnabled = enabled
	if written {
		s.HasWritten = true
	}
}
