package core

import (
	"errors"

	"github.com/krau/SiteLens/i18n"
	"github.com/krau/SiteLens/i18n/i18nk"
	"github.com/krau/SiteLens/pkg/manifest"
)

// UserMessage turns a submission error into a notice for the user. With
// no langs the configured language is used.
func UserMessage(err error, langs ...string) string {
	key, data := messageKey(err)
	if len(langs) == 0 {
		return i18n.T(key, data)
	}
	return i18n.TWithLang(key, langs, data)
}

func messageKey(err error) (i18nk.Key, map[string]any) {
	if errors.Is(err, manifest.ErrEmptyInput) {
		return i18nk.EmptyInput, nil
	}
	var fe *manifest.FetchError
	if !errors.As(err, &fe) {
		return i18nk.FetchFailed, map[string]any{"Error": err}
	}
	data := map[string]any{"URL": fe.URL, "Status": fe.StatusCode}
	switch {
	case errors.Is(fe, manifest.ErrBadStatus):
		return i18nk.FetchBadStatus, data
	case errors.Is(fe, manifest.ErrInvalidDocument):
		return i18nk.FetchInvalidDocument, data
	default:
		return i18nk.FetchUnreachable, data
	}
}
