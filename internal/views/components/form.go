package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"hci-practical/internal/greeting"
)

// GreetingForm holds the name entry, the greet button and the greeting label
type GreetingForm struct {
	container   *fyne.Container
	promptLabel *widget.Label
	nameEntry   *widget.Entry
	greetButton *widget.Button
	resultLabel *widget.Label

	// Event handlers
	greetHandler func()
}

// NewGreetingForm creates a new greeting form component
func NewGreetingForm() *GreetingForm {
	gf := &GreetingForm{}
	gf.createComponents()
	gf.buildLayout()
	gf.setupEventHandlers()
	return gf
}

// createComponents initializes all form widgets
func (gf *GreetingForm) createComponents() {
	gf.promptLabel = widget.NewLabel("Enter Your Name:")

	gf.nameEntry = widget.NewEntry()
	gf.nameEntry.SetPlaceHolder("Type your name")

	gf.greetButton = widget.NewButton("Greet Me", nil)
	gf.greetButton.Importance = widget.HighImportance

	gf.resultLabel = widget.NewLabelWithStyle(
		greeting.WaitingText,
		fyne.TextAlignCenter,
		fyne.TextStyle{Italic: true},
	)
}

// buildLayout constructs the form layout
func (gf *GreetingForm) buildLayout() {
	nameRow := container.NewBorder(nil, nil, gf.promptLabel, nil, gf.nameEntry)
	buttonRow := container.NewHBox(layout.NewSpacer(), gf.greetButton)

	gf.container = container.NewVBox(
		nameRow,
		buttonRow,
		gf.resultLabel,
	)
}

// setupEventHandlers connects widget events
func (gf *GreetingForm) setupEventHandlers() {
	gf.greetButton.OnTapped = func() {
		if gf.greetHandler != nil {
			gf.greetHandler()
		}
	}
}

// SetGreetHandler sets the greet button handler
func (gf *GreetingForm) SetGreetHandler(handler func()) {
	gf.greetHandler = handler
}

// CurrentName returns the text currently typed into the name entry
func (gf *GreetingForm) CurrentName() string {
	return gf.nameEntry.Text
}

// SetGreeting replaces the greeting label content
func (gf *GreetingForm) SetGreeting(text string) {
	gf.resultLabel.SetText(text)
}

// Greeting returns the current greeting label content
func (gf *GreetingForm) Greeting() string {
	return gf.resultLabel.Text
}

// NameEntry returns the name entry widget
func (gf *GreetingForm) NameEntry() *widget.Entry {
	return gf.nameEntry
}

// GreetButton returns the greet button widget
func (gf *GreetingForm) GreetButton() *widget.Button {
	return gf.greetButton
}

// Reset restores the form to its initial state
func (gf *GreetingForm) Reset() {
	gf.nameEntry.SetText("")
	gf.resultLabel.SetText(greeting.WaitingText)
}

// GetContainer returns the form container
func (gf *GreetingForm) GetContainer() *fyne.Container {
	return gf.container
}
