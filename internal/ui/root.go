package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/tubeview/tubeview/internal/comments"
	"github.com/tubeview/tubeview/internal/config"
	"github.com/tubeview/tubeview/internal/feed"
)

// RootUI owns the top-level window content. It constructs the five panels,
// renders each exactly once in fixed order (header, sidebar, grid, player,
// comments), and composes them into the window layout. Panels never call one
// another; all cross-cutting behavior goes through the services.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	header       *HeaderPanel
	sidebar      *SidebarPanel
	grid         *VideoGridPanel
	player       *VideoPlayerPanel
	commentsView *CommentsPanel

	// Fixed render order
	panels []Panel
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, feedSvc feed.TileSource, store comments.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
	}

	ui.header = NewHeaderPanel(localization)
	ui.sidebar = NewSidebarPanel(localization)
	ui.grid = NewVideoGridPanel(feedSvc, localization)
	ui.player = NewVideoPlayerPanel(localization)
	ui.commentsView = NewCommentsPanel(store, settings, localization)

	ui.panels = []Panel{ui.header, ui.sidebar, ui.grid, ui.player, ui.commentsView}

	log.Printf("RootUI initialized with feed service: %v", feedSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI renders all panels once and arranges the window layout
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Each panel renders exactly once, in fixed order
	for _, panel := range ui.panels {
		panel.Render()
	}

	// Center column: grid above player above comments, scrollable
	center := container.NewVScroll(container.NewVBox(
		ui.grid.Content(),
		ui.player.Content(),
		ui.commentsView.Content(),
	))

	content := container.NewBorder(
		ui.header.Content(),  // top
		nil,                  // bottom
		ui.sidebar.Content(), // left
		nil,                  // right
		center,
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Refresh feed re-runs the audited grid rebuild
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefreshFeed), func() {
		ui.grid.RefreshFeed()
	})

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), refreshItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Apply the configured window size immediately
		ui.window.Resize(fyne.NewSize(
			float32(ui.settings.GetWindowWidth()),
			float32(ui.settings.GetWindowHeight()),
		))
	})
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update panel texts
	ui.header.refreshTexts()
	ui.sidebar.refreshTexts()
	ui.commentsView.refreshTexts()
}

// Header returns the header panel
func (ui *RootUI) Header() *HeaderPanel {
	return ui.header
}

// Sidebar returns the sidebar panel
func (ui *RootUI) Sidebar() *SidebarPanel {
	return ui.sidebar
}

// Grid returns the video grid panel
func (ui *RootUI) Grid() *VideoGridPanel {
	return ui.grid
}

// Player returns the video player panel
func (ui *RootUI) Player() *VideoPlayerPanel {
	return ui.player
}

// Comments returns the comments panel
func (ui *RootUI) Comments() *CommentsPanel {
	return ui.commentsView
}
