package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeySearch        = "search"
	KeySearchHint    = "search_hint"
	KeyHome          = "home"
	KeyTrending      = "trending"
	KeySubscriptions = "subscriptions"
	KeyLibrary       = "library"
	KeyVideoPlayer   = "video_player"
	KeyPlay          = "play"
	KeyPause         = "pause"
	KeyComments      = "comments"
	KeySubmitComment = "submit_comment"
	KeyCommentHint   = "comment_hint"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyView          = "view"
	KeyLanguage      = "language"
	KeyRefreshFeed   = "refresh_feed"
	KeyDisplayName   = "display_name"
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "TubeView",
		KeySearch:        "Search",
		KeySearchHint:    "Search",
		KeyHome:          "Home",
		KeyTrending:      "Trending",
		KeySubscriptions: "Subscriptions",
		KeyLibrary:       "Library",
		KeyVideoPlayer:   "Video Player",
		KeyPlay:          "Play",
		KeyPause:         "Pause",
		KeyComments:      "Comments",
		KeySubmitComment: "Submit Comment",
		KeyCommentHint:   "Add a comment...",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyView:          "View",
		KeyLanguage:      "Language",
		KeyRefreshFeed:   "Refresh Feed",
		KeyDisplayName:   "Display Name",
		KeyWindowWidth:   "Window Width",
		KeyWindowHeight:  "Window Height",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "TubeView",
		KeySearch:        "Поиск",
		KeySearchHint:    "Поиск",
		KeyHome:          "Главная",
		KeyTrending:      "В тренде",
		KeySubscriptions: "Подписки",
		KeyLibrary:       "Библиотека",
		KeyVideoPlayer:   "Видеоплеер",
		KeyPlay:          "Воспроизвести",
		KeyPause:         "Пауза",
		KeyComments:      "Комментарии",
		KeySubmitComment: "Отправить комментарий",
		KeyCommentHint:   "Добавьте комментарий...",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyView:          "Вид",
		KeyLanguage:      "Язык",
		KeyRefreshFeed:   "Обновить ленту",
		KeyDisplayName:   "Отображаемое имя",
		KeyWindowWidth:   "Ширина окна",
		KeyWindowHeight:  "Высота окна",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "TubeView",
		KeySearch:        "Pesquisar",
		KeySearchHint:    "Pesquisar",
		KeyHome:          "Início",
		KeyTrending:      "Em alta",
		KeySubscriptions: "Inscrições",
		KeyLibrary:       "Biblioteca",
		KeyVideoPlayer:   "Reprodutor de vídeo",
		KeyPlay:          "Reproduzir",
		KeyPause:         "Pausar",
		KeyComments:      "Comentários",
		KeySubmitComment: "Enviar comentário",
		KeyCommentHint:   "Adicione um comentário...",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyView:          "Exibir",
		KeyLanguage:      "Idioma",
		KeyRefreshFeed:   "Atualizar feed",
		KeyDisplayName:   "Nome de exibição",
		KeyWindowWidth:   "Largura da janela",
		KeyWindowHeight:  "Altura da janela",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas!",
	}
}
