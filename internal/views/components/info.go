package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hci-practical/internal/greeting"
)

// InfoPanel holds the multi-line text box and its clear button
type InfoPanel struct {
	container    *fyne.Container
	sectionLabel *widget.Label
	textBox      *widget.Entry
	clearButton  *widget.Button

	// Event handlers
	clearHandler func()
}

// NewInfoPanel creates a new info panel component
func NewInfoPanel() *InfoPanel {
	ip := &InfoPanel{}
	ip.createComponents()
	ip.buildLayout()
	ip.setupEventHandlers()
	return ip
}

// createComponents initializes all panel widgets
func (ip *InfoPanel) createComponents() {
	ip.sectionLabel = widget.NewLabel("Multi-line Text Box:")

	ip.textBox = widget.NewMultiLineEntry()
	ip.textBox.SetText(greeting.SeedText)
	ip.textBox.SetMinRowsVisible(8)
	ip.textBox.Wrapping = fyne.TextWrapWord

	ip.clearButton = widget.NewButton("Clear Text Box", nil)
}

// buildLayout constructs the panel layout
func (ip *InfoPanel) buildLayout() {
	buttonRow := container.NewHBox(layout.NewSpacer(), ip.clearButton)

	ip.container = container.NewVBox(
		ip.sectionLabel,
		ip.textBox,
		buttonRow,
	)
}

// setupEventHandlers connects widget events
func (ip *InfoPanel) setupEventHandlers() {
	ip.clearButton.OnTapped = func() {
		if ip.clearHandler != nil {
			ip.clearHandler()
		}
	}
}

// SetClearHandler sets the clear button handler
func (ip *InfoPanel) SetClearHandler(handler func()) {
	ip.clearHandler = handler
}

// Content returns the current text box content
func (ip *InfoPanel) Content() string {
	return ip.textBox.Text
}

// SetContent replaces the entire text box content
func (ip *InfoPanel) SetContent(text string) {
	ip.textBox.SetText(text)
}

// TextBox returns the multi-line entry widget
func (ip *InfoPanel) TextBox() *widget.Entry {
	return ip.textBox
}

// ClearButton returns the clear button widget
func (ip *InfoPanel) ClearButton() *widget.Button {
	return ip.clearButton
}

// Reset restores the text box to its seeded initial content
func (ip *InfoPanel) Reset() {
	ip.textBox.SetText(greeting.SeedText)
}

// GetContainer returns the panel container
func (ip *InfoPanel) GetContainer() *fyne.Container {
	return ip.container
}
