// Package tools exposes the query engine to the dialogue orchestrator as two
// named, schema-described operations. The metadata doubles as the schema the
// hosting layer binds onto whatever LLM tool-calling mechanism it provides;
// nothing in here depends on that mechanism. The contract is text-in/text-out:
// every Execute returns speakable prose, and data conditions (no matches,
// unknown id, unreachable inventory) degrade to polite sentences instead of
// errors.
package tools

import (
	"context"
	"fmt"
	"sync"
)

type Tool interface {
	Name() string
	Description() string
	Parameters() []Parameter
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Parameter describes one argument a tool accepts.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string|number|integer
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Schema is the declarative description handed to the orchestrator.
type Schema struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Registry maps tool names to implementations. Registration happens at
// startup; lookups run concurrently per conversation turn.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("tool %s already registered", t.Name())
	}
	r.tools[t.Name()] = t
	r.order = append(r.order, t.Name())
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Schemas lists every registered tool in registration order.
func (r *Registry) Schemas() []Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Schema, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		out = append(out, Schema{Name: t.Name(), Description: t.Description(), Parameters: t.Parameters()})
	}
	return out
}
