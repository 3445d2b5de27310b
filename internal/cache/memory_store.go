package cache

import "github.com/rmoreau/loanboard/internal/models"

type memoryKey struct {
	office    string
	weekStart string
}

// MemoryStore keeps snapshots for the life of the process only. Used in
// tests and when no cache path is configured.
type MemoryStore struct {
	metrics map[memoryKey]*models.Metrics
	runs    map[memoryKey]*models.RunResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		metrics: make(map[memoryKey]*models.Metrics),
		runs:    make(map[memoryKey]*models.RunResult),
	}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetMetrics(office, weekStart string) (*models.Metrics, bool, error) {
	m, ok := s.metrics[memoryKey{office, weekStart}]
	return m, ok, nil
}

func (s *MemoryStore) SetMetrics(office, weekStart string, m *models.Metrics) error {
	s.metrics[memoryKey{office, weekStart}] = m
	return nil
}

func (s *MemoryStore) GetRunResult(office, weekStart string) (*models.RunResult, bool, error) {
	r, ok := s.runs[memoryKey{office, weekStart}]
	return r, ok, nil
}

func (s *MemoryStore) SetRunResult(office, weekStart string, r *models.RunResult) error {
	s.runs[memoryKey{office, weekStart}] = r
	return nil
}

func (s *MemoryStore) Invalidate(office string) error {
	for k := range s.metrics {
		if k.office == office {
			delete(s.metrics, k)
		}
	}
	for k := range s.runs {
		if k.office == office {
			delete(s.runs, k)
		}
	}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.metrics = make(map[memoryKey]*models.Metrics)
	s.runs = make(map[memoryKey]*models.RunResult)
	return nil
}
