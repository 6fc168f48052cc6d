package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tubeview/tubeview/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	authorEntry    *widget.Entry
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Comment author display name
	sd.authorEntry = widget.NewEntry()
	sd.authorEntry.SetPlaceHolder(config.DefaultCommentAuthor)

	// Window size
	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultWindowWidth))
	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(strconv.Itoa(config.DefaultWindowHeight))

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDisplayName)+":"),
		sd.authorEntry,

		widget.NewLabel(sd.localization.GetText(KeyWindowWidth)+":"),
		sd.widthEntry,

		widget.NewLabel(sd.localization.GetText(KeyWindowHeight)+":"),
		sd.heightEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.authorEntry.SetText(sd.settings.GetCommentAuthor())
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetWindowWidth()))
	sd.heightEntry.SetText(strconv.Itoa(sd.settings.GetWindowHeight()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.authorEntry.Text != "" {
		sd.settings.SetCommentAuthor(sd.authorEntry.Text)
	}

	if width, err := strconv.Atoi(sd.widthEntry.Text); err == nil {
		sd.settings.SetWindowWidth(width)
	}

	if height, err := strconv.Atoi(sd.heightEntry.Text); err == nil {
		sd.settings.SetWindowHeight(height)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
