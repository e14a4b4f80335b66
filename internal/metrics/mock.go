package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	playersAdded       int
	playersRemoved     int
	matchesScheduled   int
	matchesDeleted     int
	resultsRecorded    int
	commentaryRequests int
	commentaryFailures int
	notifSent          int
	notifFailed        int
	computeDurations   []float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		computeDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPlayersAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersAdded++
}

func (m *Mock) IncPlayersRemoved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersRemoved++
}

func (m *Mock) IncMatchesScheduled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesScheduled++
}

func (m *Mock) IncMatchesDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesDeleted++
}

func (m *Mock) IncResultsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resultsRecorded++
}

func (m *Mock) IncCommentaryRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentaryRequests++
}

func (m *Mock) IncCommentaryFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentaryFailures++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) ObserveStandingsComputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.computeDurations = append(m.computeDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlayersAdded returns the number of times IncPlayersAdded was called.
func (m *Mock) PlayersAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersAdded
}

// ResultsRecorded returns the number of times IncResultsRecorded was called.
func (m *Mock) ResultsRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resultsRecorded
}

// CommentaryRequests returns the number of times IncCommentaryRequests was called.
func (m *Mock) CommentaryRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commentaryRequests
}

// CommentaryFailures returns the number of times IncCommentaryFailures was called.
func (m *Mock) CommentaryFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commentaryFailures
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
