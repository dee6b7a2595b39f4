// Package observability provides hooks for instrumenting pipeline runs.
//
// Hooks are optional: the defaults do nothing, and a binary that wants
// metrics or tracing registers its own implementation at startup. Libraries
// only call the hooks and never import a metrics backend.
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run application
//	}
//
// Stages report their start and completion:
//
//	observability.Pipeline().OnStageStart(ctx, "components")
//	// ... build records ...
//	observability.Pipeline().OnStageComplete(ctx, "components", n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from consolidation runs.
type PipelineHooks interface {
	// OnStageStart is called before a stage runs.
	OnStageStart(ctx context.Context, stage string)
	// OnStageComplete is called after a stage with the number of items it
	// produced and its error, if any.
	OnStageComplete(ctx context.Context, stage string, items int, duration time.Duration, err error)
	// OnRunComplete is called once per run, successful or not.
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, time.Duration, error)        {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil value is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
