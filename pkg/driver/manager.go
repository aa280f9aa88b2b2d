package driver

import (
	"sort"
	"sync"
)

// Builder creates an adapter for target, the part of the source argument
// that names the device, display or file.
type Builder func(target string) (Adapter, error)

// Candidate is a registered way of opening one device type.
type Candidate struct {
	Info  Info
	build Builder
}

// Build creates a closed Driver for target. The returned driver's label is
// the candidate label followed by the target, if any.
func (c Candidate) Build(target string) (Driver, error) {
	a, err := c.build(target)
	if err != nil {
		return nil, err
	}

	info := c.Info
	if target != "" {
		info.Label += ":" + target
	}
	return Wrap(a, info), nil
}

// Manager is a singleton to manage the registered drivers
type Manager struct {
	mu         sync.Mutex
	candidates map[DeviceType][]Candidate
}

var manager = &Manager{
	candidates: make(map[DeviceType][]Candidate),
}

// GetManager gets manager singleton instance
func GetManager() *Manager {
	return manager
}

// Register registers a builder for info.DeviceType. Drivers usually call it
// from init, so a blank import is enough to make them available.
func (m *Manager) Register(info Info, build Builder) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.candidates[info.DeviceType] = append(m.candidates[info.DeviceType], Candidate{Info: info, build: build})
}

// Query returns the candidates registered for t, highest priority first.
// Candidates with equal priority keep their registration order.
func (m *Manager) Query(t DeviceType) []Candidate {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := append([]Candidate(nil), m.candidates[t]...)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Info.Priority > results[j].Info.Priority
	})
	return results
}
