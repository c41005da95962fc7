package i18n

import "testing"

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("FR-fr,fr;q=0.8") != "fr" {
		t.Fatalf("expected fr")
	}
	if DetectLanguage("de-DE,de;q=0.9") != "en" {
		t.Fatalf("expected en fallback for unsupported language")
	}
	if DetectLanguage("") != "en" {
		t.Fatalf("expected default en")
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"en", "fr"} {
		if !Supported(lang) {
			t.Fatalf("expected %s supported", lang)
		}
	}
	if Supported("de") || Supported("") {
		t.Fatalf("expected unsupported languages rejected")
	}
}

func TestTranslations(t *testing.T) {
	if T("en", "required") != "Required" {
		t.Fatalf("expected Required")
	}
	if T("fr", "required") != "Requis" {
		t.Fatalf("expected Requis")
	}
	// unknown code -> fallback to code
	if T("en", "__nope__") != "__nope__" {
		t.Fatalf("expected fallback to code")
	}
	// unknown language -> fallback to en translation if it exists
	if T("es", "required") != "Required" {
		t.Fatalf("expected en fallback for es lang")
	}
}

func TestParams(t *testing.T) {
	got := T("en", "suspension_notice", "date", "11 March 2024 18:51 UTC")
	want := "Your account has been suspended until 11 March 2024 18:51 UTC. You may not add or edit content until your suspension has been resolved. Please contact Abuse for more information."
	if got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}
