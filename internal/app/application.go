package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"hci-practical/internal/config"
	"hci-practical/internal/controllers"
	"hci-practical/internal/events"
	"hci-practical/internal/logger"
	"hci-practical/internal/models"
	"hci-practical/internal/shutdown"
	"hci-practical/internal/views"
)

const (
	AppName        = "HCI Practical Reference"
	AppID          = "com.hcipractical.reference"
	AppVersion     = "1.0.0"
	AppDescription = "An interactive form demo: a name entry, buttons,\na greeting label and a multi-line text box."

	eventBufferSize = 64
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	// MVC components
	view       *views.MainView
	controller *controllers.MainController

	// State and observability
	session *models.SessionRepository
	bus     *events.Bus
	history *events.HistoryHandler

	// Lifecycle management
	shutdownManager *shutdown.Manager
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(cfg.Window.Title)

	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.SetFixedSize(cfg.Window.FixedSize)
	if cfg.Window.Centered {
		window.CenterOnScreen()
	}
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_title":  cfg.Window.Title,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
	})

	session := models.NewSessionRepository()

	bus := events.NewBus(eventBufferSize)
	history := events.NewHistoryHandler(cfg.Session.HistorySize)
	logging := events.NewLoggingHandler(log)
	for _, eventType := range []string{events.TypeGreet, events.TypeClear, events.TypeReset} {
		bus.Subscribe(eventType, history)
		bus.Subscribe(eventType, logging)
	}

	view := views.NewMainView(window)
	controller := controllers.NewMainController(session, bus, history, log)
	controller.SetMainView(view)

	// Reverse order on shutdown: controller summary first, bus last
	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("interaction bus", bus)
	shutdownManager.Register("controller", controller)

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		logger:          log,
		config:          cfg,
		view:            view,
		controller:      controller,
		session:         session,
		bus:             bus,
		history:         history,
		shutdownManager: shutdownManager,
	}

	application.setupMenus()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}
