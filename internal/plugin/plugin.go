// SPDX-License-Identifier: MIT

// Package plugin adapts expanded palettes to a utility-first CSS build
// pipeline: it produces the framework configuration and the :root variables
// the generated utilities read from.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/thatcatcamp/forewind/internal/output"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/vars"
)

// ErrMissingDependency is returned when the host lacks the forms plugin
// configured with the class strategy
var ErrMissingDependency = errors.New("missing required plugin")

// Options configures the adapter
type Options struct {
	Dynamic       bool             // emit var(...) references instead of static colors
	Prefix        string           // variable prefix, "color" when empty
	Format        palette.Format   // format of generated shades
	Colors        *palette.Palette // base palette, the built-in one when nil
	Output        output.Options
	OutputEnabled bool
}

// Plugin builds configuration for one host. The expanded source palette of
// the last Config call is kept for Extend.
type Plugin struct {
	opts    Options
	emitter *output.Emitter
	logger  zerolog.Logger

	mu     sync.Mutex
	source *palette.Palette
}

// New creates a plugin. emitter may be nil to disable file output.
func New(opts Options, emitter *output.Emitter, logger zerolog.Logger) *Plugin {
	if opts.Prefix == "" {
		opts.Prefix = "color"
	}
	opts.Prefix = strings.TrimPrefix(opts.Prefix, "--")
	if opts.Colors == nil {
		opts.Colors = palette.DefaultBase()
	}
	return &Plugin{opts: opts, emitter: emitter, logger: logger}
}

// Config expands the palette, writes it through the emitter when enabled and
// returns the framework configuration
func (p *Plugin) Config(ctx context.Context) (*Config, error) {
	source, err := p.expand()
	if err != nil {
		return nil, err
	}

	colors := source
	if p.opts.Dynamic {
		colors, err = vars.ThemeVars(source, vars.Options{Prefix: p.opts.Prefix, Alpha: true})
		if err != nil {
			return nil, err
		}
	}

	if p.emitter != nil {
		if _, err := p.emitter.Emit(ctx, source, p.opts.OutputEnabled); err != nil {
			p.logger.Warn().Err(err).Msg("continuing without palette output")
		}
	}

	p.logger.Info().
		Int("colors", source.Len()).
		Bool("dynamic", p.opts.Dynamic).
		Str("format", p.opts.Format.String()).
		Msg("plugin config built")

	return newConfig(colors), nil
}

// Source returns the expanded palette of the last Config call
func (p *Plugin) Source() *palette.Palette {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

func (p *Plugin) expand() (*palette.Palette, error) {
	source, err := palette.ExpandPalette(p.opts.Colors, p.opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to expand palette: %w", err)
	}
	p.mu.Lock()
	p.source = source
	p.mu.Unlock()
	return source, nil
}

// Extend checks the host's plugins and, in dynamic mode, adds the :root
// channel variables for every host color with the expanded source laid over
// them
func (p *Plugin) Extend(host Host) error {
	if !hasFormsStrategy(host.Plugins()) {
		return fmt.Errorf("%w: forewind requires the forms plugin configured with strategy \"class\"", ErrMissingDependency)
	}
	if !p.opts.Dynamic {
		return nil
	}

	source := p.Source()
	if source == nil {
		var err error
		if source, err = p.expand(); err != nil {
			return err
		}
	}

	merged := palette.New()
	hostColors := host.Colors()
	for _, name := range hostColors.Names() {
		if palette.IsExcluded(name) {
			continue
		}
		e, _ := hostColors.Get(name)
		merged.Set(name, e)
	}
	merged = merged.Merge(source)

	root, err := vars.RootVars(merged, p.opts.Prefix)
	if err != nil {
		return fmt.Errorf("failed to build root variables: %w", err)
	}
	host.AddBase(":root", root)
	return nil
}

func hasFormsStrategy(plugins []Ref) bool {
	for _, ref := range plugins {
		if !strings.HasSuffix(ref.Name, "forms") {
			continue
		}
		if strategy, ok := ref.Options["strategy"].(string); ok && strategy == "class" {
			return true
		}
	}
	return false
}
