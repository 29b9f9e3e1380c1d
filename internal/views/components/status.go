package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and the running interaction count
type StatusBar struct {
	container        *fyne.Container
	statusLabel      *widget.Label
	interactionsInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar widgets
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.interactionsInfo = widget.NewLabel("Interactions: 0")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		layout.NewSpacer(),
		sb.interactionsInfo,
	)
}

// SetStatus updates the status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetInteractionCount updates the interaction counter display
func (sb *StatusBar) SetInteractionCount(count int) {
	sb.interactionsInfo.SetText(fmt.Sprintf("Interactions: %d", count))
}

// InteractionInfo returns the current counter display text
func (sb *StatusBar) InteractionInfo() string {
	return sb.interactionsInfo.Text
}

// Reset restores the status bar to its initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.interactionsInfo.SetText("Interactions: 0")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
