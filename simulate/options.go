// SPDX-License-Identifier: MIT

package simulate

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/fisheries/recruitment"
)

// Option configures Run.
type Option func(*options)

type options struct {
	logger *slog.Logger
	custom recruitment.Func
	runID  uuid.UUID
}

// WithLogger sets the structured logger. Run is silent by default.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simulate: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithCustomRecruitment supplies the recruitment function used when the
// configuration selects the Custom theory.
func WithCustomRecruitment(fn recruitment.Func) Option {
	return func(o *options) { o.custom = fn }
}

// WithRunID fixes the run identifier instead of generating a random one.
func WithRunID(id uuid.UUID) Option {
	return func(o *options) { o.runID = id }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == uuid.Nil {
		o.runID = uuid.New()
	}

	return o
}
