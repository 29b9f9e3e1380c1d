package events

import (
	"sync"

	"hci-practical/internal/logger"
)

// LoggingHandler writes every interaction to the structured log.
type LoggingHandler struct {
	logger logger.Logger
}

func NewLoggingHandler(log logger.Logger) *LoggingHandler {
	return &LoggingHandler{logger: log}
}

func (lh *LoggingHandler) Handle(event Event) {
	fields := map[string]interface{}{
		"type":      event.Type,
		"timestamp": event.Timestamp,
	}
	for k, v := range event.Data {
		fields[k] = v
	}
	lh.logger.Debug("interactions", "interaction recorded", fields)
}

func (lh *LoggingHandler) GetID() string {
	return "interaction-logging"
}

// HistoryHandler keeps a bounded ring of recent interactions for the
// interaction log dialog.
type HistoryHandler struct {
	mu       sync.RWMutex
	capacity int
	events   []Event
}

func NewHistoryHandler(capacity int) *HistoryHandler {
	if capacity <= 0 {
		capacity = 1
	}
	return &HistoryHandler{capacity: capacity}
}

func (hh *HistoryHandler) Handle(event Event) {
	hh.mu.Lock()
	defer hh.mu.Unlock()

	hh.events = append(hh.events, event)
	if len(hh.events) > hh.capacity {
		hh.events = hh.events[len(hh.events)-hh.capacity:]
	}
}

// Events returns recorded interactions, oldest first.
func (hh *HistoryHandler) Events() []Event {
	hh.mu.RLock()
	defer hh.mu.RUnlock()

	out := make([]Event, len(hh.events))
	copy(out, hh.events)
	return out
}

func (hh *HistoryHandler) Len() int {
	hh.mu.RLock()
	defer hh.mu.RUnlock()
	return len(hh.events)
}

func (hh *HistoryHandler) GetID() string {
	return "interaction-history"
}
