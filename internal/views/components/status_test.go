package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestStatusBarInitialState(t *testing.T) {
	test.NewApp()
	bar := NewStatusBar()

	assert.Equal(t, "Ready", bar.GetStatus())
	assert.Equal(t, "Interactions: 0", bar.InteractionInfo())
}

func TestStatusBarSetStatus(t *testing.T) {
	test.NewApp()
	bar := NewStatusBar()

	bar.SetStatus("Greeted Ada")

	assert.Equal(t, "Greeted Ada", bar.GetStatus())
}

func TestStatusBarSetInteractionCount(t *testing.T) {
	test.NewApp()
	bar := NewStatusBar()

	bar.SetInteractionCount(7)

	assert.Equal(t, "Interactions: 7", bar.InteractionInfo())
}

func TestStatusBarReset(t *testing.T) {
	test.NewApp()
	bar := NewStatusBar()

	bar.SetStatus("Greeted Ada")
	bar.SetInteractionCount(3)
	bar.Reset()

	assert.Equal(t, "Ready", bar.GetStatus())
	assert.Equal(t, "Interactions: 0", bar.InteractionInfo())
}
