package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errNotObject = errors.New("manifest is not a JSON object")

// Raw is an untrusted, loosely shaped JSON object.
//
// Every optional path of the manifest is read through the accessors below,
// a missing key, a null, a wrong type and a blank string all look the same
// to callers: absent.
type Raw struct {
	data map[string]any
}

func NewRaw(data map[string]any) *Raw {
	if data == nil {
		data = make(map[string]any)
	}
	return &Raw{data: data}
}

// DecodeRaw parses a JSON object. Numbers are kept as json.Number so that
// large epoch values survive untouched.
func DecodeRaw(body []byte) (*Raw, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return NewRaw(obj), nil
}

// Value walks path and returns whatever is stored there.
func (r *Raw) Value(path ...string) (any, bool) {
	if r == nil {
		return nil, false
	}
	var cur any = r.data
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// String returns the scalar at path. Strings are trimmed, numbers are
// returned in their JSON text form. Blank values report false.
func (r *Raw) String(path ...string) (string, bool) {
	v, ok := r.Value(path...)
	if !ok {
		return "", false
	}
	return scalar(v)
}

// StringOr is String with a fallback for absent values.
func (r *Raw) StringOr(def string, path ...string) string {
	if s, ok := r.String(path...); ok {
		return s
	}
	return def
}

// Strings returns the array at path with every element converted by the
// same rules as String. Non-scalar elements become "" so indices line up
// with the source array.
func (r *Raw) Strings(path ...string) []string {
	v, ok := r.Value(path...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(arr))
	for i, el := range arr {
		out[i], _ = scalar(el)
	}
	return out
}

// Items returns the entries of the top-level "items" array. Entries that
// are not objects are kept as empty objects, the result always has the
// same length as the source array.
func (r *Raw) Items() []*Raw {
	v, ok := r.Value("items")
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]*Raw, len(arr))
	for i, el := range arr {
		obj, _ := el.(map[string]any)
		items[i] = NewRaw(obj)
	}
	return items
}

func scalar(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = strings.TrimSpace(t)
	case json.Number:
		s = t.String()
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return "", false
	}
	return s, s != ""
}
