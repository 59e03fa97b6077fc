package manifest

import (
	"errors"
	"fmt"
)

var (
	ErrUnreachable     = errors.New("manifest host unreachable")
	ErrBadStatus       = errors.New("unexpected manifest response status")
	ErrInvalidDocument = errors.New("invalid manifest document")
)

// FetchError describes a failed manifest fetch. Kind is one of
// ErrUnreachable, ErrBadStatus or ErrInvalidDocument and can be matched
// with errors.Is.
type FetchError struct {
	URL        string
	Kind       error
	StatusCode int
	MimeType   string // detected type of the response body, if any
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrBadStatus:
		return fmt.Sprintf("%s: %s returned status %d", e.Kind, e.URL, e.StatusCode)
	case ErrInvalidDocument:
		if e.MimeType != "" {
			return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.URL, e.MimeType, e.Err)
		}
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindName is a short stable name of the error kind.
func (e *FetchError) KindName() string {
	switch e.Kind {
	case ErrUnreachable:
		return "unreachable"
	case ErrBadStatus:
		return "status"
	case ErrInvalidDocument:
		return "parse"
	}
	return "unknown"
}

// IsParseError reports whether err is a manifest that could not be parsed.
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidDocument)
}
