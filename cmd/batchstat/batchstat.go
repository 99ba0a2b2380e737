// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command batchstat drives the batchers over a synthetic UI frame and
// prints the resulting segments and batches, to inspect the effect of
// the batcher settings. It can also print the effective settings.
package main

import (
	"embed"
	"log/slog"
	"math/rand/v2"
	"os"

	"cogentcore.org/batch/base/errors"
	"cogentcore.org/batch/base/iox/tomlx"
	"cogentcore.org/batch/base/logx"
	"cogentcore.org/batch/batch"
	"cogentcore.org/batch/batch/immediate"
	"cogentcore.org/batch/batch/transparency"
	"cogentcore.org/batch/handles"
	"cogentcore.org/core/cli"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the batchstat cli.
type Config struct {

	// Settings is an optional TOML or YAML file with the batcher
	// settings. Missing settings keep their defaults.
	Settings string `flag:"s,settings"`

	// Preset is the name of one of the built in settings presets
	// (flat, debug or small), used when there is no settings file.
	Preset string `flag:"p,preset"`

	// Output is the file that the config command writes the
	// settings to, instead of standard output.
	Output string `cmd:"config" flag:"o,output"`

	// Widgets is the number of widgets in the immediate mode frame.
	Widgets int `default:"40"`

	// Quads is the number of quads sorted by transparency.
	Quads int `default:"200"`

	// Seed is the random seed of the synthetic frame.
	Seed uint64 `default:"1"`

	// Log is the logging level: debug, info, warn or error.
	Log string `default:"warn"`
}

func main() {
	opts := cli.DefaultOptions("batchstat", "Batchstat prints the segments and batches the batchers build for a synthetic UI frame.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run builds a synthetic frame and prints its segments and batches.", Root: true},
		&cli.Cmd[*Config]{Func: Settings, Name: "config", Doc: "Config prints the effective batcher settings as TOML."},
		&cli.Cmd[*Config]{Func: Watch, Name: "watch", Doc: "Watch runs the frame again every time the settings file changes."},
	)
}

// Run builds a synthetic frame with both batchers and prints the result.
func Run(c *Config) error {
	setLogger(c)
	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}
	sc, err := newScene()
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewPCG(c.Seed, c.Seed))

	bt := immediate.New(cfg)
	if err := buildFrame(bt, sc, c.Widgets, rnd); err != nil {
		return err
	}
	st := transparency.New[handles.Handle](c.Quads, cfg)
	buildQuads(st, sc, c.Quads, rnd)

	out := termenv.NewOutput(os.Stdout)
	reportFrame(out, bt, sc)
	reportQuads(out, st, sc)
	return nil
}

// Settings prints the effective settings as TOML, or saves them
// to [Config.Output] in the format of its extension.
func Settings(c *Config) error {
	setLogger(c)
	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}
	if c.Output != "" {
		return cfg.SaveConfig(c.Output)
	}
	return errors.Wrap(tomlx.Write(cfg, os.Stdout))
}

func setLogger(c *Config) {
	logx.UserLevel = logx.LevelFromFlags(c.Log == "debug", c.Log == "info", c.Log == "error")
	logx.SetDefaultLogger()
}

//go:embed presets/*.toml
var presets embed.FS

func loadSettings(c *Config) (*batch.Config, error) {
	if c.Settings == "" {
		if c.Preset == "" {
			return batch.DefaultConfig(), nil
		}
		cfg, err := batch.OpenConfigFS(presets, "presets/"+c.Preset+".toml")
		if err != nil {
			return nil, err
		}
		slog.Info("loaded preset", "name", c.Preset)
		return cfg, nil
	}
	cfg, err := batch.OpenConfig(c.Settings)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded settings", "file", c.Settings)
	return cfg, nil
}
