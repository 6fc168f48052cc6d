package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyCommentAuthor = "comment_author"
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultCommentAuthor = "You"
	DefaultWindowWidth   = 800
	DefaultWindowHeight  = 600

	MinWindowWidth  = 400
	MinWindowHeight = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCommentAuthor returns the display name attached to submitted comments
func (s *Settings) GetCommentAuthor() string {
	author := s.app.Preferences().String(KeyCommentAuthor)
	if author == "" {
		s.SetCommentAuthor(DefaultCommentAuthor)
		return DefaultCommentAuthor
	}
	return author
}

// SetCommentAuthor sets the display name attached to submitted comments
func (s *Settings) SetCommentAuthor(author string) {
	if author == "" {
		author = DefaultCommentAuthor
	}
	s.app.Preferences().SetString(KeyCommentAuthor, author)
}

// GetWindowWidth returns the configured window width
func (s *Settings) GetWindowWidth() int {
	width := s.app.Preferences().Int(KeyWindowWidth)
	if width <= 0 {
		s.SetWindowWidth(DefaultWindowWidth)
		return DefaultWindowWidth
	}
	return width
}

// SetWindowWidth sets the window width, clamped to the minimum
func (s *Settings) SetWindowWidth(width int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
}

// GetWindowHeight returns the configured window height
func (s *Settings) GetWindowHeight() int {
	height := s.app.Preferences().Int(KeyWindowHeight)
	if height <= 0 {
		s.SetWindowHeight(DefaultWindowHeight)
		return DefaultWindowHeight
	}
	return height
}

// SetWindowHeight sets the window height, clamped to the minimum
func (s *Settings) SetWindowHeight(height int) {
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
