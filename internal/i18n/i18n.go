// Package i18n provides internationalization support for the composition service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "vi-VN,vi;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "vi" from "vi-VN")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":          "Invalid request",
			"error.invalid_request_body":     "Invalid request body",
			"error.internal_error":           "An unexpected error occurred",
			"error.unauthorized":             "Unauthorized",
			"error.not_found":                "Not found",
			"error.rate_limit_exceeded":      "Too many requests, please try again later",
			"error.conflict":                 "Conflict",
			"error.composition.empty":        "At least one ingredient is required",
			"error.composition.invalid_pick": "Step and ingredient identifiers must be positive integers",
			"error.dish_not_found":           "Dish not found",
			"error.mutation_in_flight":       "A change to this dish is already being processed, please retry",
			"error.catalog_unavailable":      "The customization catalog is temporarily unavailable",
			"error.invalid_token":            "Invalid or expired token",
			"error.token_required":           "Authentication token is required",
			"error.timeout":                  "Request timed out",

			// Success messages
			"success.dish_composed": "Dish composed successfully",
			"success.pick_mutated":  "Ingredient updated successfully",
		},
		"vi": {
			// Error messages
			"error.invalid_request":          "Yêu cầu không hợp lệ",
			"error.invalid_request_body":     "Nội dung yêu cầu không hợp lệ",
			"error.internal_error":           "Đã xảy ra lỗi không mong muốn",
			"error.unauthorized":             "Chưa xác thực",
			"error.not_found":                "Không tìm thấy",
			"error.rate_limit_exceeded":      "Quá nhiều yêu cầu, vui lòng thử lại sau",
			"error.conflict":                 "Xung đột",
			"error.composition.empty":        "Món ăn cần ít nhất một nguyên liệu",
			"error.composition.invalid_pick": "Mã bước và mã nguyên liệu phải là số nguyên dương",
			"error.dish_not_found":           "Không tìm thấy món ăn",
			"error.mutation_in_flight":       "Một thay đổi cho món này đang được xử lý, vui lòng thử lại",
			"error.catalog_unavailable":      "Danh mục tùy chọn tạm thời không khả dụng",
			"error.invalid_token":            "Token không hợp lệ hoặc đã hết hạn",
			"error.token_required":           "Cần token xác thực",
			"error.timeout":                  "Yêu cầu đã hết thời gian chờ",

			// Success messages
			"success.dish_composed": "Tạo món thành công",
			"success.pick_mutated":  "Cập nhật nguyên liệu thành công",
		},
	}
}
