package stepgrid

import (
	"io"
	"log/slog"
)

// Option configures a Finder via functional arguments.
type Option func(*Options)

// Options holds the logger and hooks used by a Finder.
type Options struct {
	// Logger receives one Debug record per query.
	Logger *slog.Logger

	// OnRelax is called every time a flood stores a value into the
	// working grid, including overwrites of an earlier value.
	OnRelax func(p Point, h Height)

	// OnAppend is called for every cell appended to a query's output,
	// in output order.
	OnAppend func(p Point)
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnRelax:  func(Point, Height) {},
		OnAppend: func(Point) {},
	}
}

// WithLogger sets the logger used for query tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRelax registers a callback fired on every working-grid write.
func WithOnRelax(fn func(p Point, h Height)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnAppend registers a callback fired on every output append.
func WithOnAppend(fn func(p Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAppend = fn
		}
	}
}
