// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package gfxcfg loads the on-disk configuration for the gfxdraw CLI: the
// default stroke and fill colours, the output image size, and where the
// demo preview PNG gets written.
package gfxcfg

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full set of settings a gfxdraw.toml file may specify.
// Every field has a sensible zero-config default, applied by Default.
type Config struct {
	Width, Height int
	Background    string // "#AARRGGBB" or "#RRGGBB"
	StrokeColour  string
	FillColour    string
	OutputPath    string
}

const fileName = "gfxdraw.toml"

// Default returns the configuration gfxdraw runs with when no config
// file is present.
func Default() Config {
	return Config{
		Width:        128,
		Height:       128,
		Background:   "#000000",
		StrokeColour: "#FFFFFF",
		FillColour:   "#00000000",
		OutputPath:   "gfxdraw-out.png",
	}
}

// Load reads fileName from dir, overlaying it onto Default. A missing
// file is not an error: the defaults are returned unchanged, logged at
// the same verbosity the rest of the ambient stack uses for
// non-fatal conditions.
func Load(dir string) (Config, error) {
	cfg := Default()
	path := filepath.Join(dir, fileName)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			log.Printf("no %s found in %s, using defaults", fileName, dir)
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to fileName in dir, creating dir if it does not
// already exist.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&cfg); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName), buf.Bytes(), 0o644)
}
