// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/forewind/internal/backup"
	"github.com/thatcatcamp/forewind/internal/config"
	"github.com/thatcatcamp/forewind/internal/db"
	"github.com/thatcatcamp/forewind/internal/output"
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/store"
	"github.com/thatcatcamp/forewind/internal/themes"
)

// addSourceFlags registers the flags that pick the base palette
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("palette", "", "Palette file (YAML or JSON)")
	cmd.Flags().String("preset", "", "Built-in preset name")
	cmd.Flags().String("stored", "", "Name of a palette saved with 'forewind palette save'")
}

// loadSource returns the base palette chosen by flags, falling back to
// palette.file and then palette.preset from the config
func loadSource(cmd *cobra.Command) (*palette.Palette, error) {
	file, _ := cmd.Flags().GetString("palette")
	preset, _ := cmd.Flags().GetString("preset")
	stored, _ := cmd.Flags().GetString("stored")

	switch {
	case file != "":
		return loadFile(file)
	case stored != "":
		if err := initSystemDB(); err != nil {
			return nil, err
		}
		return store.LoadPalette(db.GetDB(), stored)
	case preset != "":
		return loadPreset(preset)
	case config.GetString("palette.file") != "":
		return loadFile(config.GetString("palette.file"))
	default:
		return loadPreset(config.GetString("palette.preset"))
	}
}

func loadFile(path string) (*palette.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()
	return palette.Load(f)
}

func loadPreset(name string) (*palette.Palette, error) {
	if name == "" {
		name = "default"
	}
	preset := themes.GetPreset(name)
	if preset == nil {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return preset.Palette(), nil
}

// outputOptions reads the output.* config keys
func outputOptions() (output.Options, error) {
	t, err := output.ParseType(config.GetString("output.type"))
	if err != nil {
		return output.Options{}, err
	}
	return output.Options{
		Dir:  config.GetString("output.dir"),
		Name: config.GetString("output.name"),
		Ext:  config.GetString("output.ext"),
		Type: t,
	}, nil
}

// newSink writes to S3 when output.s3_bucket is set, else to disk relative
// to the working directory
func newSink(ctx context.Context) (output.Sink, error) {
	bucket := config.GetString("output.s3_bucket")
	if bucket == "" {
		return output.FileSink{Root: "."}, nil
	}
	return output.NewS3Sink(ctx, bucket, config.GetString("output.s3_prefix"))
}

func newEmitter(ctx context.Context, logger zerolog.Logger) (*output.Emitter, error) {
	opts, err := outputOptions()
	if err != nil {
		return nil, err
	}
	sink, err := newSink(ctx)
	if err != nil {
		return nil, err
	}
	return output.NewEmitter(opts, sink, nil, logger), nil
}

// newBackupManager reads backups.dir and shares the output sink
func newBackupManager(ctx context.Context, logger zerolog.Logger) (*backup.Manager, error) {
	sink, err := newSink(ctx)
	if err != nil {
		return nil, err
	}
	return backup.NewManager(db.GetDB(), sink, config.GetString("backups.dir"), logger), nil
}
