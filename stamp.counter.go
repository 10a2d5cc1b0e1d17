package stamp

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
)

// Counter store operation names, used in error metadata
const (
	CounterOpOpen     = "open"
	CounterOpNext     = "next"
	CounterOpPeek     = "peek"
	CounterOpReset    = "reset"
	CounterOpResetAll = "reset_all"
	CounterOpMigrate  = "migrate"
)

// CounterStore holds named counters shared by every format rendered through
// an engine. Implementations must make Next atomic per name.
type CounterStore interface {
	// Next returns initial the first time name is used and previous+step on
	// every later call.
	Next(ctx context.Context, name string, initial, step int64) (int64, error)

	// Peek returns the last value handed out for name without changing it.
	Peek(ctx context.Context, name string) (int64, bool, error)

	// Reset forgets name so the next call starts again from its initial value.
	Reset(ctx context.Context, name string) error

	// ResetAll forgets every counter.
	ResetAll(ctx context.Context) error

	// Close releases resources owned by the store.
	Close() error
}

// memoryCell is one counter. Each cell has its own lock so unrelated names
// never contend.
type memoryCell struct {
	mu      sync.Mutex
	value   int64
	started bool
}

// MemoryCounterStore keeps counters in process memory.
type MemoryCounterStore struct {
	cells  sync.Map // name -> *memoryCell
	closed atomic.Bool
}

// NewMemoryCounterStore creates an empty in-memory store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{}
}

func (s *MemoryCounterStore) cell(name string) *memoryCell {
	if c, ok := s.cells.Load(name); ok {
		return c.(*memoryCell)
	}
	c, _ := s.cells.LoadOrStore(name, &memoryCell{})
	return c.(*memoryCell)
}

// Next implements CounterStore.
func (s *MemoryCounterStore) Next(_ context.Context, name string, initial, step int64) (int64, error) {
	if s.closed.Load() {
		return 0, NewCounterStoreClosedError(CounterOpNext)
	}

	c := s.cell(name)
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		c.value = initial
		c.started = true
	} else {
		c.value += step
	}
	return c.value, nil
}

// Peek implements CounterStore.
func (s *MemoryCounterStore) Peek(_ context.Context, name string) (int64, bool, error) {
	if s.closed.Load() {
		return 0, false, NewCounterStoreClosedError(CounterOpPeek)
	}

	v, ok := s.cells.Load(name)
	if !ok {
		return 0, false, nil
	}
	c := v.(*memoryCell)
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value, c.started, nil
}

// Reset implements CounterStore.
func (s *MemoryCounterStore) Reset(_ context.Context, name string) error {
	if s.closed.Load() {
		return NewCounterStoreClosedError(CounterOpReset)
	}
	s.cells.Delete(name)
	return nil
}

// ResetAll implements CounterStore.
func (s *MemoryCounterStore) ResetAll(_ context.Context) error {
	if s.closed.Load() {
		return NewCounterStoreClosedError(CounterOpResetAll)
	}
	s.cells.Clear()
	return nil
}

// Names returns the names of all started counters, sorted.
func (s *MemoryCounterStore) Names() []string {
	var names []string
	s.cells.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	sort.Strings(names)
	return names
}

// Close implements CounterStore. Further calls fail.
func (s *MemoryCounterStore) Close() error {
	s.closed.Store(true)
	return nil
}

// CounterDriver opens counter stores from a connection string.
// Drivers register themselves during init().
type CounterDriver interface {
	Open(dsn string) (CounterStore, error)
}

// CounterDriverFunc adapts a function to CounterDriver.
type CounterDriverFunc func(dsn string) (CounterStore, error)

// Open implements CounterDriver.
func (f CounterDriverFunc) Open(dsn string) (CounterStore, error) {
	return f(dsn)
}

var (
	counterDriversMu sync.RWMutex
	counterDrivers   = make(map[string]CounterDriver)
)

func init() {
	RegisterCounterDriver(CounterDriverMemory, CounterDriverFunc(func(string) (CounterStore, error) {
		return NewMemoryCounterStore(), nil
	}))
}

// RegisterCounterDriver makes a driver available to OpenCounterStore.
// Panics if driver is nil or the name is taken.
func RegisterCounterDriver(name string, driver CounterDriver) {
	counterDriversMu.Lock()
	defer counterDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilCounterDriver)
	}
	if _, exists := counterDrivers[name]; exists {
		panic(ErrMsgDriverRegistered + ": " + name)
	}
	counterDrivers[name] = driver
}

// OpenCounterStore opens a store with the named driver.
func OpenCounterStore(driverName, dsn string) (CounterStore, error) {
	counterDriversMu.RLock()
	driver, ok := counterDrivers[driverName]
	counterDriversMu.RUnlock()

	if !ok {
		return nil, NewCounterDriverNotFoundError(driverName)
	}
	return driver.Open(dsn)
}

// ListCounterDrivers returns the registered driver names, sorted.
func ListCounterDrivers() []string {
	counterDriversMu.RLock()
	defer counterDriversMu.RUnlock()

	names := make([]string, 0, len(counterDrivers))
	for name := range counterDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
