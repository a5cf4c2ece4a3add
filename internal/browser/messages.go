package browser

// Message keys for notices raised by the controller
const (
	KeyTitleAccessDenied  = "title_access_denied"
	KeyTitleError         = "title_error"
	KeyTitleSuccess       = "title_success"
	KeyNotAllowedFormat   = "not_allowed_format"
	KeyOnlyAllowedLinks   = "only_allowed_links"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyAlreadyInList      = "already_in_list"
	KeyInvalidURL         = "invalid_url"
	KeyURLAdded           = "url_added"
	KeyFailedToSave       = "failed_to_save"
	KeyNoValidURLs        = "no_valid_urls"
	KeyImportedFormat     = "imported_format"
	KeyFailedToImport     = "failed_to_import"
	KeyFailedToExport     = "failed_to_export"
	KeyNavigationFailed   = "navigation_failed"
	KeyActionNotSupported = "action_not_supported"
)

// EnglishTexts are used when no translator is configured
var EnglishTexts = map[string]string{
	KeyTitleAccessDenied:  "Access Denied",
	KeyTitleError:         "Error",
	KeyTitleSuccess:       "Success",
	KeyNotAllowedFormat:   "%s is not in the allowed list",
	KeyOnlyAllowedLinks:   "You can only visit allowed links",
	KeyPleaseEnterURL:     "Please enter a URL",
	KeyAlreadyInList:      "This URL is already in the list",
	KeyInvalidURL:         "A URL cannot contain spaces or line breaks",
	KeyURLAdded:           "URL added to allowed list",
	KeyFailedToSave:       "Failed to save URLs",
	KeyNoValidURLs:        "No valid URLs found in file",
	KeyImportedFormat:     "Imported %d URLs",
	KeyFailedToImport:     "Failed to import URLs",
	KeyFailedToExport:     "Failed to export URLs",
	KeyNavigationFailed:   "Failed to open page",
	KeyActionNotSupported: "This action is not available here",
}

type englishTranslator struct{}

func (englishTranslator) GetText(key string) string {
	if text, ok := EnglishTexts[key]; ok {
		return text
	}
	return key
}
