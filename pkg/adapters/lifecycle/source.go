// Package lifecycle bridges editor change events to lifecycle consumers.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/outline/pkg/core"
)

type editorSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits editor events.
// It bridges the typed core.Event channel to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &editorSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *editorSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *editorSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event satisfies lifecycle.Event through String().
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
