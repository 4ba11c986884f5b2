package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vishyarjun/fyyur/internal/domain"
)

// PathID parses the named path value as a positive integer id.
func PathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseBool parses a checkbox or select value. Empty means false.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "on", "1":
		return true, nil
	case "", "n", "no", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", s)
}

// ParseShowTime accepts RFC 3339 or domain.ShowTimeLayout, the latter read as UTC.
func ParseShowTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(domain.ShowTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_time %q must be RFC 3339 or %q", s, domain.ShowTimeLayout)
	}
	return t, nil
}

// Flag is a boolean that also decodes from the strings ParseBool accepts.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = Flag(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected a boolean, got %s", b)
	}
	v, err := ParseBool(s)
	if err != nil {
		return err
	}
	*f = Flag(v)
	return nil
}

// Bool returns nil when f is nil.
func (f *Flag) Bool() *bool {
	if f == nil {
		return nil
	}
	v := bool(*f)
	return &v
}

// FormString returns a pointer to the submitted value of key, or nil when the
// form did not include it.
func FormString(values url.Values, key string) *string {
	if _, ok := values[key]; !ok {
		return nil
	}
	v := strings.TrimSpace(values.Get(key))
	return &v
}

// FormFlag reads a checkbox. An absent checkbox is unchecked.
func FormFlag(values url.Values, key string) (*Flag, error) {
	v, err := ParseBool(values.Get(key))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	f := Flag(v)
	return &f, nil
}

// FormList reads a multi-select. An absent select submits no values.
func FormList(values url.Values, key string) []string {
	out := make([]string, 0, len(values[key]))
	for _, v := range values[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Deref returns "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
