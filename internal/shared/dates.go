package shared

import (
	"time"

	"golang.org/x/text/language"
)

const isoDateLayout = "2006-01-02"

// supportedLocales pairs with localeLayouts by index. The first entry is the fallback.
var supportedLocales = []language.Tag{
	language.Und,
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Dutch,
	language.Japanese,
}

var localeLayouts = []string{
	isoDateLayout,
	"1/2/2006",
	"02/01/2006",
	"2.1.2006",
	"02/01/2006",
	"2/1/2006",
	"2-1-2006",
	"2006/01/02",
}

var localeMatcher = language.NewMatcher(supportedLocales)

// DateFormatter renders stored calendar dates for a locale.
type DateFormatter struct {
	locale language.Tag
	layout string
}

// NewDateFormatter matches locale (a BCP 47 tag such as "en-US") against the known layouts.
//
// Unparsable or unknown locales fall back to ISO 8601 dates.
func NewDateFormatter(locale string) *DateFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return &DateFormatter{locale: language.Und, layout: isoDateLayout}
	}

	_, idx, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		idx = 0
	}

	return &DateFormatter{locale: tag, layout: localeLayouts[idx]}
}

// Locale returns the tag the formatter was built for.
func (f *DateFormatter) Locale() string { return f.locale.String() }

// Format parses a stored YYYY-MM-DD date and renders it with the locale's layout.
//
// Values that are not ISO dates (older records stored pre-formatted) are returned as stored.
func (f *DateFormatter) Format(stored string) string {
	t, err := time.Parse(isoDateLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(f.layout)
}
