// Package module holds the process wide port registry modules publish into at mount time
package module

import "sync"

var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name, replacing any previous one
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs looks up name and asserts its port set to T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v := reg[name]
	mu.RUnlock()
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry, tests only
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
