package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryStartsEmpty(t *testing.T) {
	repo := NewSessionRepository()
	state := repo.Snapshot()

	assert.Zero(t, state.GreetCount)
	assert.Zero(t, state.ClearCount)
	assert.Zero(t, state.ResetCount)
	assert.Zero(t, state.TotalInteractions)
	assert.Empty(t, state.LastName)
	assert.Empty(t, state.LastGreeting)
	assert.False(t, state.StartTime.IsZero())
}

func TestRecordGreetTracksLastGreeting(t *testing.T) {
	repo := NewSessionRepository()

	repo.RecordGreet("Ada", "Hello, Ada! Welcome to HCI.")
	repo.RecordGreet("Grace", "Hello, Grace! Welcome to HCI.")

	state := repo.Snapshot()
	assert.Equal(t, 2, state.GreetCount)
	assert.Equal(t, "Grace", state.LastName)
	assert.Equal(t, "Hello, Grace! Welcome to HCI.", state.LastGreeting)
}

func TestRecordResetForgetsLastGreeting(t *testing.T) {
	repo := NewSessionRepository()

	repo.RecordGreet("Ada", "Hello, Ada! Welcome to HCI.")
	repo.RecordReset()

	state := repo.Snapshot()
	assert.Equal(t, 1, state.ResetCount)
	assert.Empty(t, state.LastName)
	assert.Empty(t, state.LastGreeting)
}

func TestTotalInteractionsCombinesAllCounts(t *testing.T) {
	repo := NewSessionRepository()

	repo.RecordGreet("Ada", "Hello, Ada! Welcome to HCI.")
	repo.RecordClear()
	repo.RecordClear()
	repo.RecordReset()

	assert.Equal(t, 4, repo.TotalInteractions())
	assert.Equal(t, 4, repo.Snapshot().TotalInteractions)
}

func TestSessionRepositoryConcurrentAccess(t *testing.T) {
	repo := NewSessionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			repo.RecordGreet("Ada", "Hello, Ada! Welcome to HCI.")
		}()
		go func() {
			defer wg.Done()
			repo.RecordClear()
		}()
		go func() {
			defer wg.Done()
			_ = repo.Snapshot()
		}()
	}
	wg.Wait()

	state := repo.Snapshot()
	assert.Equal(t, 10, state.GreetCount)
	assert.Equal(t, 10, state.ClearCount)
	assert.Equal(t, 20, state.TotalInteractions)
}
