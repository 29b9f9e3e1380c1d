package views

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"hci-practical/internal/events"
	"hci-practical/internal/models"
	"hci-practical/internal/views/components"
)

// MainView represents the main application view using MVC pattern
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.GreetingForm
	infoPanel     *components.InfoPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	greetHandler func()
	clearHandler func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.form = components.NewGreetingForm()
	mv.infoPanel = components.NewInfoPanel()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	contentArea := container.NewVBox(
		mv.form.GetContainer(),
		widget.NewSeparator(),
		mv.infoPanel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewPadded(contentArea),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.form.SetGreetHandler(func() {
		if mv.greetHandler != nil {
			mv.greetHandler()
		}
	})

	mv.infoPanel.SetClearHandler(func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	})
}

// Event handler setters - called by controller

// SetGreetHandler sets the handler for greet requests
func (mv *MainView) SetGreetHandler(handler func()) {
	mv.greetHandler = handler
}

// SetClearHandler sets the handler for clear requests
func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

// UI state methods - called by controller

// CurrentName returns the text typed into the name entry
func (mv *MainView) CurrentName() string {
	return mv.form.CurrentName()
}

// SetGreeting replaces the greeting label content
func (mv *MainView) SetGreeting(text string) {
	mv.form.SetGreeting(text)
}

// Greeting returns the current greeting label content
func (mv *MainView) Greeting() string {
	return mv.form.Greeting()
}

// SetTextBoxContent replaces the multi-line text box content
func (mv *MainView) SetTextBoxContent(text string) {
	mv.infoPanel.SetContent(text)
}

// TextBoxContent returns the multi-line text box content
func (mv *MainView) TextBoxContent() string {
	return mv.infoPanel.Content()
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Status returns the current status bar message
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// SetInteractionCount updates the status bar interaction counter
func (mv *MainView) SetInteractionCount(count int) {
	mv.statusBar.SetInteractionCount(count)
}

// ResetForm restores every widget to its initial content
func (mv *MainView) ResetForm() {
	mv.form.Reset()
	mv.infoPanel.Reset()
}

// Dialogs

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version, description string) {
	content := container.NewVBox(
		widget.NewLabelWithStyle(appName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel(description),
	)

	dialog.ShowCustom("About", "Close", content, mv.window)
}

// ShowSessionStats displays the session counters
func (mv *MainView) ShowSessionStats(state models.SessionState) {
	lastGreeting := state.LastGreeting
	if lastGreeting == "" {
		lastGreeting = "none yet"
	}

	stats := widget.NewForm(
		widget.NewFormItem("Greetings", widget.NewLabel(strconv.Itoa(state.GreetCount))),
		widget.NewFormItem("Clears", widget.NewLabel(strconv.Itoa(state.ClearCount))),
		widget.NewFormItem("Resets", widget.NewLabel(strconv.Itoa(state.ResetCount))),
		widget.NewFormItem("Total", widget.NewLabel(strconv.Itoa(state.TotalInteractions))),
		widget.NewFormItem("Last greeting", widget.NewLabel(lastGreeting)),
		widget.NewFormItem("Session started", widget.NewLabel(state.StartTime.Format("15:04:05"))),
	)

	dialog.ShowCustom("Session Stats", "Close", stats, mv.window)
}

// ShowInteractionLog displays recent interactions, oldest first
func (mv *MainView) ShowInteractionLog(entries []events.Event) {
	if len(entries) == 0 {
		dialog.ShowInformation("Interaction Log", "No interactions recorded yet.", mv.window)
		return
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, formatLogEntry(entry))
	}

	logLabel := widget.NewLabel(strings.Join(lines, "\n"))
	logLabel.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewVScroll(logLabel)
	scroll.SetMinSize(fyne.NewSize(360, 220))

	dialog.ShowCustom("Interaction Log", "Close", scroll, mv.window)
}

// formatLogEntry renders one interaction as a single log line
func formatLogEntry(entry events.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-5s", entry.Timestamp.Format("15:04:05"), entry.Type)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s=%v", k, entry.Data[k])
	}

	return b.String()
}

// Component accessors

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Form returns the greeting form component
func (mv *MainView) Form() *components.GreetingForm {
	return mv.form
}

// InfoPanel returns the info panel component
func (mv *MainView) InfoPanel() *components.InfoPanel {
	return mv.infoPanel
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// ViewState represents the current state of the view
type ViewState struct {
	Name            string
	Greeting        string
	TextBoxContent  string
	StatusMessage   string
	InteractionInfo string
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		Name:            mv.form.CurrentName(),
		Greeting:        mv.form.Greeting(),
		TextBoxContent:  mv.infoPanel.Content(),
		StatusMessage:   mv.statusBar.GetStatus(),
		InteractionInfo: mv.statusBar.InteractionInfo(),
	}
}
