package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Column widths of the venues and artists tables.
const (
	shortFieldLen = 120
	longFieldLen  = 500
)

// problems collects validation messages for one form.
type problems []string

func (p *problems) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		*p = append(*p, field+" is required")
	}
}

func (p *problems) link(field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		*p = append(*p, field+" must be an absolute http(s) URL")
	}
}

func (p *problems) maxLen(field, value string, n int) {
	if utf8.RuneCountInString(value) > n {
		*p = append(*p, fmt.Sprintf("%s must be at most %d characters", field, n))
	}
}

func (p *problems) state(value string) {
	if value == "" {
		return
	}
	if !IsKnownState(value) {
		*p = append(*p, fmt.Sprintf("state %q is not a known state code", value))
	}
}

func (p *problems) genres(values []string) {
	if len(values) == 0 {
		*p = append(*p, "genres is required")
		return
	}
	for _, g := range values {
		if !IsKnownGenre(g) {
			*p = append(*p, fmt.Sprintf("genre %q is not a known genre", g))
		}
	}
}

func (p problems) err() error {
	return NewValidationError(p)
}
