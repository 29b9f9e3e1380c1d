package models

import (
	"sync"
	"time"
)

// SessionState is a point-in-time snapshot of the interaction session
type SessionState struct {
	GreetCount        int
	ClearCount        int
	ResetCount        int
	TotalInteractions int
	LastName          string
	LastGreeting      string
	StartTime         time.Time
}

// SessionRepository tracks user interactions for the current run
type SessionRepository struct {
	mu           sync.RWMutex
	greetCount   int
	clearCount   int
	resetCount   int
	lastName     string
	lastGreeting string
	startTime    time.Time
}

// NewSessionRepository creates a new session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		startTime: time.Now(),
	}
}

// RecordGreet stores the latest greeting and increments the greet count
func (sr *SessionRepository) RecordGreet(name, greeting string) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sr.greetCount++
	sr.lastName = name
	sr.lastGreeting = greeting
}

// RecordClear increments the clear count
func (sr *SessionRepository) RecordClear() {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.clearCount++
}

// RecordReset increments the reset count and forgets the last greeting
func (sr *SessionRepository) RecordReset() {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sr.resetCount++
	sr.lastName = ""
	sr.lastGreeting = ""
}

// Snapshot returns a copy of the current session state
func (sr *SessionRepository) Snapshot() SessionState {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	return SessionState{
		GreetCount:        sr.greetCount,
		ClearCount:        sr.clearCount,
		ResetCount:        sr.resetCount,
		TotalInteractions: sr.greetCount + sr.clearCount + sr.resetCount,
		LastName:          sr.lastName,
		LastGreeting:      sr.lastGreeting,
		StartTime:         sr.startTime,
	}
}

// TotalInteractions returns the combined count of all recorded interactions
func (sr *SessionRepository) TotalInteractions() int {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return sr.greetCount + sr.clearCount + sr.resetCount
}

// Uptime returns how long the session has been running
func (sr *SessionRepository) Uptime() time.Duration {
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return time.Since(sr.startTime)
}
