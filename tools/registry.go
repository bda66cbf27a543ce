package tools

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps action names to tools. It is constructed explicitly and
// passed to the planner and worker; there is no ambient global registry.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]Tool
	logger *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// Register adds a tool. Registering a duplicate or nameless tool is a
// configuration error.
func (r *Registry) Register(t Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if t.Fn == nil {
		return fmt.Errorf("tool %s has no function", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %s already registered", t.Name)
	}

	r.tools[t.Name] = t
	r.logger.Info("tool registered",
		zap.String("name", t.Name),
		zap.Int("params", len(t.Params)))
	return nil
}

// MustRegister registers tools and panics on configuration errors. Intended
// for static tool sets assembled at startup.
func (r *Registry) MustRegister(ts ...Tool) {
	for _, t := range ts {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Has reports whether the named tool is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tools[name]
	return ok
}

// List returns all tools sorted by name, for rendering the planner prompt.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
