// Package i18n provides the translation table for user-facing notices.
// Codes map to per-language strings; %{name} placeholders are substituted
// from the supplied params.
package i18n

import "strings"

const defaultLang = "en"

var translations = map[string]map[string]string{
	"en": {
		"required":                  "Required",
		"admin_only":                "I'm sorry, only an admin can look at that area.",
		"please_log_in":             "Sorry, you don't have permission to access the page you were trying to reach. Please log in.",
		"logged_in_no_permission":   "Sorry, you don't have permission to access the page you were trying to reach.",
		"not_allowed_to_see":        "Sorry, you're not allowed to see that.",
		"hidden_by_admin":           "Sorry, you can't add or edit content on a hidden item.",
		"wrangling_disabled":        "Wrangling is disabled at the moment. Please check back later.",
		"suspension_notice":         "Your account has been suspended until %{date}. You may not add or edit content until your suspension has been resolved. Please contact Abuse for more information.",
		"ban_notice":                "Your account has been banned. You are not permitted to add or edit archive content. Please contact Abuse for more information.",
		"lost_cookie":               "You appear to have lost your session. Please log in again.",
		"auth_expired":              "Your authentication credentials have expired. Please log in again.",
		"restricted_content":        "This content is only available to logged-in users.",
		"timeout":                   "The archive is overloaded and your request timed out. Please try again later.",
		"search_unavailable":        "The search engine seems to be down. Please try again later.",
		"page_not_found":            "Sorry, we couldn't find the page you were looking for.",
		"login_failed":              "The login or password you entered doesn't match our records.",
		"logged_out":                "You have been logged out.",
		"question_created":          "Archive FAQ question was successfully created.",
		"question_updated":          "Archive FAQ question was successfully updated.",
		"question_deleted":          "Archive FAQ question was successfully deleted.",
	},
	"fr": {
		"required":                "Requis",
		"admin_only":              "Désolé, seul un admin peut consulter cette section.",
		"please_log_in":           "Désolé, vous n'avez pas accès à cette page. Veuillez vous connecter.",
		"logged_in_no_permission": "Désolé, vous n'avez pas accès à cette page.",
		"not_allowed_to_see":      "Désolé, vous n'êtes pas autorisé à voir cela.",
		"hidden_by_admin":         "Désolé, vous ne pouvez pas modifier un contenu masqué.",
		"wrangling_disabled":      "Le wrangling est désactivé pour le moment. Merci de réessayer plus tard.",
		"suspension_notice":       "Votre compte est suspendu jusqu'au %{date}. Vous ne pouvez pas ajouter ou modifier de contenu pendant la suspension.",
		"ban_notice":              "Votre compte est banni. Vous ne pouvez pas ajouter ou modifier de contenu.",
		"lost_cookie":             "Votre session semble perdue. Veuillez vous reconnecter.",
		"restricted_content":      "Ce contenu est réservé aux utilisateurs connectés.",
		"logged_out":              "Vous avez été déconnecté.",
	},
}

// T returns the translation for code in lang, with %{key} placeholders
// replaced by params (given as key, value pairs). Unknown languages fall back
// to English; unknown codes fall back to the code itself.
func T(lang, code string, params ...string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[defaultLang]
	}
	msg, ok := table[code]
	if !ok {
		// Fall back to the default language before giving up.
		if msg, ok = translations[defaultLang][code]; !ok {
			msg = code
		}
	}
	for i := 0; i+1 < len(params); i += 2 {
		msg = strings.ReplaceAll(msg, "%{"+params[i]+"}", params[i+1])
	}
	return msg
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(tag, "-;"); i >= 0 {
			tag = tag[:i]
		}
		if _, ok := translations[tag]; ok {
			return tag
		}
	}
	return defaultLang
}
