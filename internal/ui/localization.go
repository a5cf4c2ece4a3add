package ui

import (
	"github.com/ytget/safe-browser/internal/browser"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Notice texts use the browser.Key* keys.
const (
	KeyAppTitle            = "app_title"
	KeyAllowedURLs         = "allowed_urls"
	KeyManageList          = "manage_list"
	KeyBack                = "back"
	KeyForward             = "forward"
	KeyReload              = "reload"
	KeyScrollUp            = "scroll_up"
	KeyScrollDown          = "scroll_down"
	KeyAdd                 = "add"
	KeyImport              = "import"
	KeyExport              = "export"
	KeyRemove              = "remove"
	KeyRemoveTitle         = "remove_title"
	KeyRemoveConfirmFormat = "remove_confirm_format"
	KeyEnterURL            = "enter_url"
	KeyCurrent             = "current"
	KeyTapToOpen           = "tap_to_open"
	KeyCurrentPage         = "current_page"
	KeyOutsideList         = "outside_list"
	KeyEmptyList           = "empty_list"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyRenderer            = "renderer"
	KeyUserAgent           = "user_agent"
	KeyHeadless            = "headless"
	KeyRestoreLastURL      = "restore_last_url"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyRestartRequired     = "restart_required"
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
	en := map[string]string{
		KeyAppTitle:            "Safe Browser",
		KeyAllowedURLs:         "Allowed URLs",
		KeyManageList:          "Manage",
		KeyBack:                "Back",
		KeyForward:             "Forward",
		KeyReload:              "Reload",
		KeyScrollUp:            "Scroll up",
		KeyScrollDown:          "Scroll down",
		KeyAdd:                 "Add",
		KeyImport:              "Import",
		KeyExport:              "Export",
		KeyRemove:              "Remove",
		KeyRemoveTitle:         "Remove URL",
		KeyRemoveConfirmFormat: "Remove %s?",
		KeyEnterURL:            "Enter URL (e.g., google.com)",
		KeyCurrent:             "✓ Current",
		KeyTapToOpen:           "Tap to open",
		KeyCurrentPage:         "Current page",
		KeyOutsideList:         "Not in the allowed list",
		KeyEmptyList:           "No allowed URLs",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyRenderer:            "Renderer",
		KeyUserAgent:           "User agent",
		KeyHeadless:            "Hide browser window",
		KeyRestoreLastURL:      "Reopen last page on start",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyRestartRequired:     "Renderer changes apply after restart",
	}
	for key, text := range browser.EnglishTexts {
		en[key] = text
	}
	l.texts["en"] = en

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Безопасный браузер",
		KeyAllowedURLs:         "Разрешённые адреса",
		KeyManageList:          "Список",
		KeyBack:                "Назад",
		KeyForward:             "Вперёд",
		KeyReload:              "Обновить",
		KeyScrollUp:            "Прокрутить вверх",
		KeyScrollDown:          "Прокрутить вниз",
		KeyAdd:                 "Добавить",
		KeyImport:              "Импорт",
		KeyExport:              "Экспорт",
		KeyRemove:              "Удалить",
		KeyRemoveTitle:         "Удаление адреса",
		KeyRemoveConfirmFormat: "Удалить %s?",
		KeyEnterURL:            "Введите адрес (например, google.com)",
		KeyCurrent:             "✓ Открыт",
		KeyTapToOpen:           "Нажмите, чтобы открыть",
		KeyCurrentPage:         "Текущая страница",
		KeyOutsideList:         "Нет в списке разрешённых",
		KeyEmptyList:           "Список пуст",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyRenderer:            "Отображение",
		KeyUserAgent:           "User agent",
		KeyHeadless:            "Скрыть окно браузера",
		KeyRestoreLastURL:      "Открывать последнюю страницу",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyRestartRequired:     "Смена отображения вступит в силу после перезапуска",

		browser.KeyTitleAccessDenied:  "Доступ запрещён",
		browser.KeyTitleError:         "Ошибка",
		browser.KeyTitleSuccess:       "Готово",
		browser.KeyNotAllowedFormat:   "%s нет в списке разрешённых",
		browser.KeyOnlyAllowedLinks:   "Можно открывать только разрешённые ссылки",
		browser.KeyPleaseEnterURL:     "Пожалуйста, введите URL",
		browser.KeyAlreadyInList:      "Этот адрес уже в списке",
		browser.KeyInvalidURL:         "Адрес не может содержать пробелы и переводы строк",
		browser.KeyURLAdded:           "Адрес добавлен в список",
		browser.KeyFailedToSave:       "Не удалось сохранить список",
		browser.KeyNoValidURLs:        "В файле нет подходящих адресов",
		browser.KeyImportedFormat:     "Импортировано адресов: %d",
		browser.KeyFailedToImport:     "Не удалось импортировать адреса",
		browser.KeyFailedToExport:     "Не удалось экспортировать адреса",
		browser.KeyNavigationFailed:   "Не удалось открыть страницу",
		browser.KeyActionNotSupported: "Это действие здесь недоступно",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Navegador Seguro",
		KeyAllowedURLs:         "URLs permitidas",
		KeyManageList:          "Gerenciar",
		KeyBack:                "Voltar",
		KeyForward:             "Avançar",
		KeyReload:              "Recarregar",
		KeyScrollUp:            "Rolar para cima",
		KeyScrollDown:          "Rolar para baixo",
		KeyAdd:                 "Adicionar",
		KeyImport:              "Importar",
		KeyExport:              "Exportar",
		KeyRemove:              "Remover",
		KeyRemoveTitle:         "Remover URL",
		KeyRemoveConfirmFormat: "Remover %s?",
		KeyEnterURL:            "Digite a URL (ex.: google.com)",
		KeyCurrent:             "✓ Atual",
		KeyTapToOpen:           "Toque para abrir",
		KeyCurrentPage:         "Página atual",
		KeyOutsideList:         "Fora da lista permitida",
		KeyEmptyList:           "Nenhuma URL permitida",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyRenderer:            "Renderizador",
		KeyUserAgent:           "User agent",
		KeyHeadless:            "Ocultar janela do navegador",
		KeyRestoreLastURL:      "Reabrir a última página",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyRestartRequired:     "A troca de renderizador vale após reiniciar",

		browser.KeyTitleAccessDenied:  "Acesso negado",
		browser.KeyTitleError:         "Erro",
		browser.KeyTitleSuccess:       "Sucesso",
		browser.KeyNotAllowedFormat:   "%s não está na lista permitida",
		browser.KeyOnlyAllowedLinks:   "Você só pode visitar links permitidos",
		browser.KeyPleaseEnterURL:     "Por favor, digite uma URL",
		browser.KeyAlreadyInList:      "Esta URL já está na lista",
		browser.KeyInvalidURL:         "A URL não pode conter espaços ou quebras de linha",
		browser.KeyURLAdded:           "URL adicionada à lista",
		browser.KeyFailedToSave:       "Falha ao salvar as URLs",
		browser.KeyNoValidURLs:        "Nenhuma URL válida encontrada no arquivo",
		browser.KeyImportedFormat:     "%d URLs importadas",
		browser.KeyFailedToImport:     "Falha ao importar URLs",
		browser.KeyFailedToExport:     "Falha ao exportar URLs",
		browser.KeyNavigationFailed:   "Falha ao abrir a página",
		browser.KeyActionNotSupported: "Esta ação não está disponível aqui",
	}
}
