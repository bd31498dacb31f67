// Package backup exports saved palettes to a portable bundle and restores them.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/forewind/internal/output"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"gorm.io/gorm"
)

// BundleVersion is written into every bundle and checked on restore
const BundleVersion = 1

// ErrUnsupportedVersion is returned for bundles written by a newer format
var ErrUnsupportedVersion = errors.New("unsupported bundle version")

// Entry is one saved palette inside a bundle
type Entry struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Palette     *palette.Palette `json:"palette"`
}

// Bundle is the exported form of every saved palette
type Bundle struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Palettes  []Entry   `json:"palettes"`
}

// RestoreResult counts what a restore did
type RestoreResult struct {
	Created int
	Updated int
	Skipped int
}

// Manager handles all backup operations
type Manager struct {
	DB     *gorm.DB
	Sink   output.Sink
	Dir    string // folder inside the sink, "backups" when empty
	Logger zerolog.Logger

	now func() time.Time
}

// NewManager creates a new backup manager
func NewManager(db *gorm.DB, sink output.Sink, dir string, logger zerolog.Logger) *Manager {
	if dir == "" {
		dir = "backups"
	}
	return &Manager{
		DB:     db,
		Sink:   sink,
		Dir:    dir,
		Logger: logger,
		now:    time.Now,
	}
}

// Export reads every saved palette into a bundle
func (m *Manager) Export(ctx context.Context) (*Bundle, error) {
	records, err := store.ListPalettes(m.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Version:   BundleVersion,
		CreatedAt: m.now().UTC(),
		Palettes:  make([]Entry, 0, len(records)),
	}
	for i := range records {
		p, err := store.Decode(&records[i])
		if err != nil {
			return nil, err
		}
		bundle.Palettes = append(bundle.Palettes, Entry{
			Name:        records[i].Name,
			Description: records[i].Description,
			Palette:     p,
		})
	}
	return bundle, nil
}

// WriteTo encodes the bundle as indented JSON
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode bundle: %w", err)
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}

// CreateBackup exports every saved palette and writes the bundle through the
// sink. It returns where the bundle was written.
func (m *Manager) CreateBackup(ctx context.Context) (string, error) {
	bundle, err := m.Export(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode bundle: %w", err)
	}

	// Format: backups/palettes-2025-12-25-143022.json
	name := fmt.Sprintf("%s/palettes-%s.json", m.Dir, bundle.CreatedAt.Format("2006-01-02-150405"))
	if err := m.Sink.Write(ctx, name, append(data, '\n')); err != nil {
		return "", fmt.Errorf("backup creation failed: %w", err)
	}

	m.Logger.Info().
		Str("target", m.Sink.Describe(name)).
		Int("palettes", len(bundle.Palettes)).
		Msg("backup written")
	return m.Sink.Describe(name), nil
}

// ReadBundle decodes a bundle and checks its version
func ReadBundle(r io.Reader) (*Bundle, error) {
	var bundle Bundle
	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}
	if bundle.Version < 1 || bundle.Version > BundleVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, bundle.Version)
	}
	return &bundle, nil
}

// Restore saves every palette in the bundle. Existing palettes are replaced
// when overwrite is set and skipped otherwise.
func (m *Manager) Restore(ctx context.Context, r io.Reader, overwrite bool) (RestoreResult, error) {
	var result RestoreResult

	bundle, err := ReadBundle(r)
	if err != nil {
		return result, err
	}

	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range bundle.Palettes {
			if e.Palette == nil {
				return fmt.Errorf("palette %s: %w", e.Name, palette.ErrUnsupportedShape)
			}

			_, err := store.GetPaletteByName(tx, e.Name)
			switch {
			case err == nil && !overwrite:
				result.Skipped++
			case err == nil:
				if _, err := store.UpdatePalette(tx, e.Name, e.Palette); err != nil {
					return err
				}
				result.Updated++
			case errors.Is(err, store.ErrNotFound):
				if _, err := store.CreatePalette(tx, e.Name, e.Description, e.Palette); err != nil {
					return err
				}
				result.Created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return RestoreResult{}, err
	}

	m.Logger.Info().
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Msg("backup restored")
	return result, nil
}
