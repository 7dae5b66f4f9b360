package app

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/locale"
)

// RequireMethod validates that the request uses the specified HTTP method
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ETag returns a strong entity tag for body
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// WriteJSON encodes v with an ETag and answers 304 when the client already
// holds the same representation.
func WriteJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, ErrFailedToGenerateJSON, http.StatusInternalServerError)
		return
	}

	tag := ETag(body)
	w.Header().Set("ETag", tag)
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// WriteBuildError maps a builder failure to a status code
func WriteBuildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidMonth):
		http.Error(w, ErrInvalidMonth, http.StatusBadRequest)
	case errors.Is(err, calendar.ErrInvalidDate), errors.Is(err, calendar.ErrInvalidWeek):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, locale.ErrUnsupportedLocale):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Error building grid: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// paramError carries the message a bad query parameter is reported with
type paramError struct {
	message string
	param   string
}

func (e *paramError) Error() string {
	return e.message + ": " + e.param
}

// WriteParamError reports a bad query parameter with 400
func WriteParamError(w http.ResponseWriter, err error) {
	var pe *paramError
	if errors.As(err, &pe) {
		http.Error(w, pe.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func intParam(q url.Values, name string, def int, message string) (int, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &paramError{message: message, param: name}
	}
	return n, nil
}

func optionalIntParam(q url.Values, name string) (*int, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, &paramError{message: ErrInvalidParameter, param: name}
	}
	return &n, nil
}

func boolParam(q url.Values, name string) bool {
	b, err := strconv.ParseBool(q.Get(name))
	return err == nil && b
}

func optionalDateParam(q url.Values, name string) (*calendar.Date, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return nil, &paramError{message: ErrInvalidDateFormat, param: name}
	}
	return &d, nil
}

func optionalWeekParam(q url.Values, name string) (*calendar.IsoWeek, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	wk, err := calendar.ParseIsoWeek(s)
	if err != nil {
		return nil, &paramError{message: ErrInvalidWeekFormat, param: name}
	}
	return &wk, nil
}

func weekdayParam(q url.Values) (time.Weekday, error) {
	s := q.Get("first_weekday")
	if s == "" {
		return Settings.Weekday(), nil
	}
	wd, err := calendar.ParseWeekday(s)
	if err != nil {
		return time.Monday, &paramError{message: ErrInvalidWeekday, param: s}
	}
	return wd, nil
}

func localeParam(q url.Values) string {
	if tag := q.Get("locale"); tag != "" {
		return tag
	}
	return Settings.Locale
}
