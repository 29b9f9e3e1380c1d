package app

import (
	"fyne.io/fyne/v2"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reset Form", func() {
			a.controller.ResetForm()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.requestShutdown()
		}),
	)

	sessionMenu := fyne.NewMenu("Session",
		fyne.NewMenuItem("Interaction Log", func() {
			a.controller.ShowInteractionLog()
		}),
		fyne.NewMenuItem("Session Stats", func() {
			a.controller.ShowSessionStats()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.view.ShowAboutDialog(AppName, AppVersion, AppDescription)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, sessionMenu, helpMenu)
	a.window.SetMainMenu(mainMenu)
}
