package controllers

import (
	"fmt"
	"time"

	"hci-practical/internal/events"
	"hci-practical/internal/greeting"
	"hci-practical/internal/logger"
	"hci-practical/internal/models"
	"hci-practical/internal/views"
)

// MainController binds view events to operations using MVC pattern
type MainController struct {
	// Views
	mainView *views.MainView

	// Models/Repositories
	session *models.SessionRepository

	// Observability
	bus     *events.Bus
	history *events.HistoryHandler
	logger  logger.Logger
}

// NewMainController creates a new main controller
func NewMainController(
	session *models.SessionRepository,
	bus *events.Bus,
	history *events.HistoryHandler,
	log logger.Logger,
) *MainController {
	return &MainController{
		session: session,
		bus:     bus,
		history: history,
		logger:  log,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetGreetHandler(mc.Greet)
	mc.mainView.SetClearHandler(mc.ClearTextBox)
}

// Greet reads the name entry and writes the greeting into the label.
// An empty entry greets the default name; the entry itself is never touched.
func (mc *MainController) Greet() {
	if mc.mainView == nil {
		return
	}

	raw := mc.mainView.CurrentName()
	name := greeting.EffectiveName(raw)
	message := greeting.Format(raw)

	mc.mainView.SetGreeting(message)
	mc.session.RecordGreet(name, message)
	mc.mainView.SetStatus(fmt.Sprintf("Greeted %s", name))
	mc.mainView.SetInteractionCount(mc.session.TotalInteractions())

	mc.bus.Publish(events.Event{
		Type: events.TypeGreet,
		Data: map[string]interface{}{"name": name},
	})

	mc.logger.Debug("MainController", "greeting generated", map[string]interface{}{
		"name": name,
	})
}

// ClearTextBox replaces the text box content with the cleared marker.
// Idempotent: clearing an already cleared box changes nothing.
func (mc *MainController) ClearTextBox() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetTextBoxContent(greeting.ClearedText)
	mc.session.RecordClear()
	mc.mainView.SetStatus("Text box cleared")
	mc.mainView.SetInteractionCount(mc.session.TotalInteractions())

	mc.bus.Publish(events.Event{Type: events.TypeClear})

	mc.logger.Debug("MainController", "text box cleared", nil)
}

// ResetForm restores every widget to its initial content
func (mc *MainController) ResetForm() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.ResetForm()
	mc.session.RecordReset()
	mc.mainView.SetStatus("Form reset")
	mc.mainView.SetInteractionCount(mc.session.TotalInteractions())

	mc.bus.Publish(events.Event{Type: events.TypeReset})

	mc.logger.Debug("MainController", "form reset", nil)
}

// ShowSessionStats displays the session counter dialog
func (mc *MainController) ShowSessionStats() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.ShowSessionStats(mc.session.Snapshot())
}

// ShowInteractionLog displays the recent interaction dialog
func (mc *MainController) ShowInteractionLog() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.ShowInteractionLog(mc.history.Events())
}

// Shutdown logs the final session summary
func (mc *MainController) Shutdown() {
	state := mc.session.Snapshot()

	mc.logger.Info("MainController", "session summary", map[string]interface{}{
		"greetings":    state.GreetCount,
		"clears":       state.ClearCount,
		"resets":       state.ResetCount,
		"interactions": state.TotalInteractions,
		"uptime":       mc.session.Uptime().Round(time.Second).String(),
	})
}
