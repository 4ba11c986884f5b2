package helpers

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// maxFormMemory bounds multipart parsing.
const maxFormMemory = 1 << 20

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// FormBinder is implemented by request DTOs that can be filled from
// url-encoded or multipart form values. BindForm returns a slice of error
// messages for values that could not be parsed.
type FormBinder interface {
	BindForm(values url.Values) []string
}

// IsForm reports whether the request body is an HTML form submission.
func IsForm(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mt == "application/x-www-form-urlencoded" || mt == "multipart/form-data"
}

// DecodeAndValidate decodes the request body into dest and, if dest
// implements Validator, runs Validate(). Form submissions are handed to
// dest's BindForm; every other body is decoded as JSON with
// DisallowUnknownFields. On decode or validation failure it writes a 400
// JSON error and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if binder, ok := dest.(FormBinder); ok && IsForm(r) {
		if err := parseForm(r); err != nil {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return false
		}
		if errs := binder.BindForm(r.PostForm); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	} else {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(dest); err != nil {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return false
		}
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}
