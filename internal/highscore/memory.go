package highscore

// MemoryBackend is an in-process Backend, used when no database is available
// and in tests.
type MemoryBackend struct {
	values map[string]int
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]int)}
}

// LoadBest returns the stored value for key, or 0.
func (m *MemoryBackend) LoadBest(key string) (int, error) {
	return m.values[key], nil
}

// SaveBest stores value for key if it is higher than the current one.
func (m *MemoryBackend) SaveBest(key string, value int) error {
	if value > m.values[key] {
		m.values[key] = value
	}
	return nil
}
