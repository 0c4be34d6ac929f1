package app

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	apperrors "chatwidget/internal/infrastructure/errors"
	"chatwidget/internal/infrastructure/logging"
)

// Greet returns a greeting for the given name
func (a *App) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

var allowedURLSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// OpenURL opens an external link with the system handler
func (a *App) OpenURL(rawURL string) error {
	err := a.openURL(rawURL)
	switch {
	case err == nil:
	case apperrors.IsValidation(err):
		a.logger.Warn("Rejected external link", "url", rawURL, "error", err)
	default:
		logging.LogError(a.logger, err, "open_url", nil)
	}
	return err
}

func (a *App) openURL(rawURL string) error {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return apperrors.New("open_url", err, apperrors.ErrCodeValidation).WithContext("url", rawURL)
	}
	if !allowedURLSchemes[strings.ToLower(parsed.Scheme)] {
		return apperrors.New("open_url", fmt.Errorf("unsupported scheme %q", parsed.Scheme),
			apperrors.ErrCodeValidation).WithContext("url", rawURL)
	}

	h := a.currentHost()
	if h == nil {
		return apperrors.New("open_url", errors.New("application not started"), apperrors.ErrCodeStartup)
	}

	if err := h.OpenURL(parsed.String()); err != nil {
		return apperrors.New("open_url", err, apperrors.ClassifyError(err)).WithContext("url", rawURL)
	}
	a.logger.Debug("Opened external link", "url", parsed.String())
	return nil
}

// ToggleFullscreen flips fullscreen on the main window and returns the new state
func (a *App) ToggleFullscreen() bool {
	w := a.mainWindow()
	if w == nil {
		return false
	}
	return w.ToggleFullscreen()
}

// IsFullscreen reports whether the main window is fullscreen
func (a *App) IsFullscreen() bool {
	w := a.mainWindow()
	if w == nil {
		return false
	}
	return w.IsFullscreen()
}

// CloseWindow closes the main window, which quits the application
func (a *App) CloseWindow() {
	w := a.mainWindow()
	if w == nil {
		return
	}
	a.logger.Info("Close requested from front end")
	w.Close()
}
