// SPDX-License-Identifier: MIT
package output

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/thatcatcamp/forewind/internal/palette"
)

// Emitter writes the palette once per enabled build
type Emitter struct {
	opts   Options
	sink   Sink
	state  *State
	logger zerolog.Logger
}

// NewEmitter creates an emitter. A nil state starts a fresh session.
func NewEmitter(opts Options, sink Sink, state *State, logger zerolog.Logger) *Emitter {
	if state == nil {
		state = &State{}
	}
	return &Emitter{opts: opts, sink: sink, state: state, logger: logger}
}

// State returns the emitter's session state
func (e *Emitter) State() *State {
	return e.state
}

// Emit writes p when the state allows it and reports whether it did. Output
// is treated as disabled when no directory is configured.
func (e *Emitter) Emit(ctx context.Context, p *palette.Palette, enabled bool) (bool, error) {
	target := e.opts.Path()
	enabled = enabled && target != "" && e.sink != nil

	if !e.state.ShouldWrite(enabled) {
		e.state.Record(enabled, false)
		return false, nil
	}

	data, err := Render(p, e.opts.Type)
	if err != nil {
		e.state.Record(enabled, false)
		return false, err
	}

	if err := e.sink.Write(ctx, target, data); err != nil {
		e.logger.Error().Err(err).Str("path", e.sink.Describe(target)).Msg("palette output failed")
		e.state.Record(enabled, false)
		return false, fmt.Errorf("palette output: %w", err)
	}

	e.logger.Info().
		Str("path", e.sink.Describe(target)).
		Str("type", string(e.opts.Type)).
		Int("bytes", len(data)).
		Msg("palette output written")
	e.state.Record(enabled, true)
	return true, nil
}
