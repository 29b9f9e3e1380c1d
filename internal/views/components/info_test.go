package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"hci-practical/internal/greeting"
)

func TestInfoPanelStartsSeeded(t *testing.T) {
	test.NewApp()
	panel := NewInfoPanel()

	assert.Equal(t, greeting.SeedText, panel.Content())
}

func TestInfoPanelTapInvokesClearHandler(t *testing.T) {
	test.NewApp()
	panel := NewInfoPanel()

	calls := 0
	panel.SetClearHandler(func() { calls++ })

	test.Tap(panel.ClearButton())

	assert.Equal(t, 1, calls)
}

func TestInfoPanelTapWithoutHandler(t *testing.T) {
	test.NewApp()
	panel := NewInfoPanel()

	assert.NotPanics(t, func() {
		test.Tap(panel.ClearButton())
	})
}

func TestInfoPanelSetContentReplacesEverything(t *testing.T) {
	test.NewApp()
	panel := NewInfoPanel()

	panel.SetContent(greeting.ClearedText)

	assert.Equal(t, greeting.ClearedText, panel.Content())
}

func TestInfoPanelReset(t *testing.T) {
	test.NewApp()
	panel := NewInfoPanel()

	panel.SetContent(greeting.ClearedText)
	panel.Reset()

	assert.Equal(t, greeting.SeedText, panel.Content())
}
