// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record, with the
// level label colored according to the color profile of the output.
// It only shows records at or above [UserLevel].
type Handler struct {
	out     io.Writer
	mu      *sync.Mutex
	profile termenv.Profile
	attrs   []slog.Attr
	group   string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are used only if the writer is a terminal that supports them.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		out:     w,
		mu:      &sync.Mutex{},
		profile: termenv.NewOutput(w).EnvColorProfile(),
	}
}

// SetDefaultLogger sets the default [slog] logger to one using
// a [Handler] writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Enabled returns whether the given level is at or above [UserLevel].
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	label := h.profile.String(r.Level.String()).Foreground(h.profile.Convert(LevelColor(r.Level)))
	if r.Level >= slog.LevelWarn {
		label = label.Bold()
	}
	buf.WriteString(label.String())
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(&buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

// writeAttr writes the given attribute with its key qualified by group.
func (h *Handler) writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(buf, " %s=%v", h.profile.String(key).Faint(), a.Value.Resolve())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}
