package ui

import "github.com/ytget/ytfetch/internal/download"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyDownload        = "download"
	KeyCancel          = "cancel"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyServerURL       = "server_url"
	KeyQuality         = "quality"
	KeyFileType        = "file_type"
	KeyPollInterval    = "poll_interval"
	KeySave            = "save"
	KeyEnterURL        = "enter_url"
	KeySettingsSaved   = "settings_saved"
	KeyStarting        = "starting"
	KeyProcessingFmt   = "processing_fmt"
	KeyErrorFmt        = "error_fmt"
	KeyDownloadReady   = "download_ready"
	KeyTitleFmt        = "title_fmt"
	KeyAuthorFmt       = "author_fmt"
	KeyClickToDownload = "click_to_download"
	KeyInvalidURL      = "invalid_url"
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

// SetLanguage sets the current language. Unknown languages are ignored.
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

// Messages returns the status texts written by the form controller
func (l *Localization) Messages() download.Messages {
	return download.Messages{
		Starting:    l.GetText(KeyStarting),
		Processing:  l.GetText(KeyProcessingFmt),
		ErrorFormat: l.GetText(KeyErrorFmt),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "YT Fetch",
		KeyDownload:        "Download",
		KeyCancel:          "Cancel",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyServerURL:       "Server URL",
		KeyQuality:         "Quality",
		KeyFileType:        "File type",
		KeyPollInterval:    "Status check interval (ms)",
		KeySave:            "Save",
		KeyEnterURL:        "Enter video URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyStarting:        "Starting download...",
		KeyProcessingFmt:   "Processing: %s",
		KeyErrorFmt:        "Error: %s",
		KeyDownloadReady:   "Download ready!",
		KeyTitleFmt:        "Title: %s",
		KeyAuthorFmt:       "Author: %s",
		KeyClickToDownload: "Click here to download",
		KeyInvalidURL:      "Invalid URL",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "YT Fetch",
		KeyDownload:        "Скачать",
		KeyCancel:          "Отмена",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyServerURL:       "Адрес сервера",
		KeyQuality:         "Качество",
		KeyFileType:        "Тип файла",
		KeyPollInterval:    "Интервал проверки статуса (мс)",
		KeySave:            "Сохранить",
		KeyEnterURL:        "Введите URL видео (https://youtube.com/watch?v=...)",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyStarting:        "Запуск загрузки...",
		KeyProcessingFmt:   "Обработка: %s",
		KeyErrorFmt:        "Ошибка: %s",
		KeyDownloadReady:   "Файл готов!",
		KeyTitleFmt:        "Название: %s",
		KeyAuthorFmt:       "Автор: %s",
		KeyClickToDownload: "Нажмите, чтобы скачать",
		KeyInvalidURL:      "Неверный URL",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "YT Fetch",
		KeyDownload:        "Baixar",
		KeyCancel:          "Cancelar",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyServerURL:       "URL do servidor",
		KeyQuality:         "Qualidade",
		KeyFileType:        "Tipo de arquivo",
		KeyPollInterval:    "Intervalo de verificação (ms)",
		KeySave:            "Salvar",
		KeyEnterURL:        "Digite a URL do vídeo (https://youtube.com/watch?v=...)",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyStarting:        "Iniciando download...",
		KeyProcessingFmt:   "Processando: %s",
		KeyErrorFmt:        "Erro: %s",
		KeyDownloadReady:   "Download pronto!",
		KeyTitleFmt:        "Título: %s",
		KeyAuthorFmt:       "Autor: %s",
		KeyClickToDownload: "Clique aqui para baixar",
		KeyInvalidURL:      "URL inválida",
	}
}
