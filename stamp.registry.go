package stamp

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps element names to descriptors. Resolve calls run concurrently;
// Register, Clear and Refresh take the write lock.
type Registry struct {
	elements map[string]*ElementDescriptor
	seeds    []ElementDescriptor
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewRegistry creates a registry pre-populated with seeds. Refresh restores
// exactly this seed set. Panics if a seed is invalid or seeds collide without
// Override, as seeds are declared in code.
func NewRegistry(logger *zap.Logger, seeds ...ElementDescriptor) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated, zap.Int(LogFieldCount, len(seeds)))

	r := &Registry{
		elements: make(map[string]*ElementDescriptor, len(seeds)),
		seeds:    append([]ElementDescriptor(nil), seeds...),
		logger:   logger,
	}
	for _, seed := range seeds {
		r.MustRegister(seed)
	}
	return r
}

// Register adds a descriptor. A name collision fails with a duplicate element
// error and leaves the existing entry in place, unless desc.Override is set.
func (r *Registry) Register(desc ElementDescriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registerLocked(desc)
}

func (r *Registry) registerLocked(desc ElementDescriptor) error {
	if _, exists := r.elements[desc.Name]; exists {
		if !desc.Override {
			r.logger.Warn(LogMsgElementCollision, zap.String(LogFieldElement, desc.Name))
			return NewDuplicateElementError(desc.Name)
		}
		r.logger.Debug(LogMsgElementOverridden, zap.String(LogFieldElement, desc.Name))
	}

	stored := desc
	r.elements[desc.Name] = &stored
	r.logger.Debug(LogMsgElementRegistered, zap.String(LogFieldElement, desc.Name))
	return nil
}

// MustRegister adds a descriptor and panics on failure.
func (r *Registry) MustRegister(desc ElementDescriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// RegisterAll registers descriptors in order, stopping at the first failure.
// Descriptors registered before the failure stay registered.
func (r *Registry) RegisterAll(descs ...ElementDescriptor) error {
	for _, desc := range descs {
		if err := r.Register(desc); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the descriptor registered under name.
// The returned descriptor must not be modified.
func (r *Registry) Resolve(name string) (*ElementDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.elements[name]
	return desc, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// List returns registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.elements))
	for name := range r.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptors returns copies of all registered descriptors sorted by name.
func (r *Registry) Descriptors() []ElementDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ElementDescriptor, 0, len(r.elements))
	for _, desc := range r.elements {
		out = append(out, *desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of registered elements.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.elements)
}

// Clear removes every registration, seeds included.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.elements = make(map[string]*ElementDescriptor)
	r.logger.Debug(LogMsgRegistryCleared)
}

// Refresh drops every registration and re-registers the seed set.
func (r *Registry) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.elements = make(map[string]*ElementDescriptor, len(r.seeds))
	for _, seed := range r.seeds {
		stored := seed
		r.elements[seed.Name] = &stored
	}
	r.logger.Debug(LogMsgRegistryRefreshed, zap.Int(LogFieldCount, len(r.elements)))
}
