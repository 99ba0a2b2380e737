// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/batch/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch runs the frame again every time the settings file changes,
// until interrupted.
func Watch(c *Config) error {
	if c.Settings == "" {
		return errors.Errorf("batchstat watch: a settings file is required: %w", errors.ErrInvalidArgument)
	}
	w, err := newSettingsWatcher(c.Settings)
	if err != nil {
		return err
	}
	defer w.Close()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := Run(c); err != nil {
		errors.Log(err)
	}
	return watchSettings(ctx, w, c.Settings, func() error { return Run(c) })
}

// newSettingsWatcher returns a watcher on the directory of the given
// file, as editors often replace files instead of writing them.
func newSettingsWatcher(filename string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, errors.Wrap(err)
	}
	return w, nil
}

// watchSettings calls onChange for every write or creation of the given
// file until the context is done. Errors of onChange are logged, so that
// a bad edit does not end the watch.
func watchSettings(ctx context.Context, w *fsnotify.Watcher, filename string, onChange func() error) error {
	target := filepath.Clean(filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			slog.Info("settings changed", "file", filename, "op", event.Op)
			errors.Log(onChange())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
