package app

import (
	"fyne.io/fyne/v2"
)

// Run shows the main window and blocks inside the Fyne event loop until
// the window closes or a shutdown signal arrives. Returns nil on a clean exit.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(a.requestShutdown)

	// Signals arrive off the UI thread, quitting goes through fyne.Do
	a.shutdownManager.Listen(func() {
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	})

	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// requestShutdown runs the ordered shutdown sequence, then closes the window
func (a *Application) requestShutdown() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.shutdownManager.Shutdown()
	a.window.Close()
}
