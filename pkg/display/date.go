package display

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// maxEpochSeconds mirrors the range of a JavaScript Date (±8.64e15 ms).
const maxEpochSeconds int64 = 8_640_000_000_000

var dateLocales = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Russian, "02.01.2006"},
	{language.Japanese, "2006/1/2"},
	{language.SimplifiedChinese, "2006/1/2"},
	{language.TraditionalChinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// DateLayout returns the calendar date layout for a BCP 47 language tag.
// Unknown or unparsable tags fall back to en-US.
func DateLayout(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return dateLocales[0].layout
	}
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return dateLocales[0].layout
	}
	return dateLocales[idx].layout
}

// ParseEpoch parses an integer count of seconds since the Unix epoch.
// Anything else, including values a browser could not turn into a valid
// date, reports false.
func ParseEpoch(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	if sec > maxEpochSeconds || sec < -maxEpochSeconds {
		return time.Time{}, false
	}
	return time.UnixMilli(sec * 1000), true
}
