package observability

import (
	"sync"
	"time"
)

// MockMetricsRegistry is a MetricsRegistry for tests. It counts calls and is
// safe for concurrent use.
type MockMetricsRegistry struct {
	mu             sync.Mutex
	Requests       map[string]int
	AdsInserted    map[string]int
	PlacementSkips int
	SeoScores      []int
}

// NewMockMetricsRegistry creates an empty mock registry.
func NewMockMetricsRegistry() *MockMetricsRegistry {
	return &MockMetricsRegistry{
		Requests:    make(map[string]int),
		AdsInserted: make(map[string]int),
	}
}

func (m *MockMetricsRegistry) IncrementRequests(endpoint, method, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint+"/"+method+"/"+status]++
}

func (m *MockMetricsRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
}

func (m *MockMetricsRegistry) IncrementAdsInserted(placement string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AdsInserted[placement]++
}

func (m *MockMetricsRegistry) IncrementPlacementSkips(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlacementSkips++
}

func (m *MockMetricsRegistry) ObserveSeoScore(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeoScores = append(m.SeoScores, score)
}
