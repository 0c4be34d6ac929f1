package main

import (
	"embed"
	"log"

	"chatwidget/internal/app"
	"chatwidget/internal/config"
	apperrors "chatwidget/internal/infrastructure/errors"
	"chatwidget/internal/infrastructure/logging"
	"chatwidget/internal/placement"

	"github.com/spf13/viper"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Load configuration before anything else so the logger honours log.level
	cfg, err := config.Load(viper.New(), config.DefaultConfigDir())
	if err != nil {
		if apperrors.IsConfig(err) {
			log.Fatalf("Invalid configuration in %s: %v", config.DefaultConfigDir(), err)
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.Log.Level)
	defer logging.Sync(logger)

	application := app.NewApp(cfg, logger)

	err = wails.Run(&options.App{
		Title:             cfg.Window.Title,
		Width:             placement.WidgetWidth,
		Height:            placement.WidgetHeight,
		DisableResize:     true,
		Fullscreen:        false,
		Frameless:         cfg.Window.Frameless,
		StartHidden:       false,
		HideWindowOnClose: false,
		AlwaysOnTop:       cfg.Window.AlwaysOnTop,
		BackgroundColour:  &options.RGBA{R: 0, G: 0, B: 0, A: 0},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:             nil,
		Logger:           logging.NewWailsLoggerAdapter(logger),
		LogLevel:         logging.WailsLogLevel(cfg.Log.Level),
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			application,
		},
		Debug: options.Debug{
			OpenInspectorOnStartup: cfg.IsDevelopment(),
		},
		// Windows platform specific options
		Windows: &windows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			DisableWindowIcon:    true,
			ZoomFactor:           1.0,
			BackdropType:         windows.Mica,
		},
		// Mac platform specific options
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
				HideTitleBar:               false,
				FullSizeContent:            true,
				UseToolbar:                 false,
				HideToolbarSeparator:       true,
			},
			Appearance:           mac.NSAppearanceNameDarkAqua,
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			About: &mac.AboutInfo{
				Title:   cfg.Window.Title,
				Message: "Desktop chat widget",
			},
		},
	})

	if err != nil {
		logger.Error("Application shell failed", "error", err)
		logging.Sync(logger)
		log.Fatal(err)
	}
}
