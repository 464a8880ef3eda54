package mocks

import (
	"context"
	"sync"

	"campusvisit/infras/otel"
)

// Otel is a no-export tracer that remembers the span names and errors it saw.
type Otel struct {
	mu     sync.Mutex
	Spans  []string
	Errors []error
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	o.Spans = append(o.Spans, spanName)
	o.mu.Unlock()

	return ctx, &scope{parent: o}
}

// TracedErrors returns a copy of the errors recorded so far.
func (o *Otel) TracedErrors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]error(nil), o.Errors...)
}

func NewOtel() *Otel {
	return &Otel{}
}

type scope struct {
	parent *Otel
}

func (s *scope) End() {}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	s.parent.mu.Lock()
	s.parent.Errors = append(s.parent.Errors, err)
	s.parent.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
