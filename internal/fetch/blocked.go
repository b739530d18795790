package fetch

import (
	"strings"
)

// Raw-markup substrings that identify challenge pages: CAPTCHA container
// ids, widget class names, and the script or iframe hosts the common
// challenge providers load from.
var challengeMarkers = []string{
	"captcha-box",
	"g-recaptcha",
	"recaptcha/api",
	"hcaptcha.com",
	"cf-challenge",
	"challenge-platform",
}

// Phrases that appear in served challenge pages but not in real result
// pages. Matching is against extracted page text and the document title.
var challengePhrases = []string{
	"are you a robot",
	"verify you are human",
	"prove you are human",
	"you have been blocked",
	"access denied",
	"unusual traffic",
	"enable javascript and cookies",
	"attention required",
	"pardon our interruption",
	"captcha",
}

// Blocked reports whether a fetched page is an anti-automation challenge
// rather than real content. The distinction matters: zero hotel cards on a
// challenge page means "move on", not "this destination has no listings".
func Blocked(content PageContent) bool {
	title := strings.ToLower(content.Title)
	for _, phrase := range []string{"robot", "blocked", "captcha", "attention required", "access denied"} {
		if strings.Contains(title, phrase) {
			return true
		}
	}

	html := strings.ToLower(content.HTML)
	for _, marker := range challengeMarkers {
		if strings.Contains(html, marker) {
			return true
		}
	}

	// Short pages with challenge wording are blocks; a phrase buried in a
	// long result page (e.g. a hotel named "Captcha Inn") is not enough on
	// its own.
	text := strings.ToLower(content.Text)
	shortPage := len(text) < 2000
	for _, phrase := range challengePhrases {
		if strings.Contains(text, phrase) && shortPage {
			return true
		}
	}

	return false
}
