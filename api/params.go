package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/dsa-learning-backend/database"
	"github.com/rpupo63/dsa-learning-backend/errs"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes int64 = 1 << 20

// errTrailingData rejects bodies holding more than one JSON value.
var errTrailingData = errors.New("body must contain a single JSON value")

// decodeJSON reads exactly one JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return errs.NewValidationError(errs.FieldError{Field: "body", Message: "request body is required"})
		case errors.As(err, &maxErr):
			return errs.NewMaxBodySizeExceededError(maxErr.Limit)
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return errs.NewValidationError(errs.FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("must be of type %s", typeErr.Type.Kind()),
			})
		default:
			return errs.NewMalformedPayloadError("JSON", err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewMaxBodySizeExceededError(maxErr.Limit)
		}
		return errs.NewMalformedPayloadError("JSON", errTrailingData)
	}
	return nil
}

// parsePage reads skip and limit, defaulting to the first DefaultLimit rows.
func parsePage(query url.Values) (database.Page, error) {
	page := database.DefaultPage()
	var fields []errs.FieldError

	if query.Has("skip") {
		n, err := nonNegativeInt(query.Get("skip"))
		if err != nil {
			fields = append(fields, errs.FieldError{Field: "skip", Message: err.Error()})
		}
		page.Offset = n
	}
	if query.Has("limit") {
		n, err := nonNegativeInt(query.Get("limit"))
		if err != nil {
			fields = append(fields, errs.FieldError{Field: "limit", Message: err.Error()})
		}
		page.Limit = n
	}

	if len(fields) > 0 {
		return database.Page{}, errs.NewValidationError(fields...)
	}
	return page, nil
}

func nonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	return n, nil
}

// parseID reads the numeric {id} path parameter.
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, errs.NewValidationError(errs.FieldError{Field: "id", Message: "must be an integer"})
	}
	return id, nil
}

// optionalIntParam returns nil when key is absent from the query string, so
// that an explicit zero is still a filter.
func optionalIntParam(query url.Values, key string) (*int, error) {
	if !query.Has(key) {
		return nil, nil
	}
	n, err := strconv.Atoi(query.Get(key))
	if err != nil {
		return nil, errs.NewValidationError(errs.FieldError{Field: key, Message: "must be an integer"})
	}
	return &n, nil
}

// optionalStringParam returns nil when key is absent; an empty value is kept.
func optionalStringParam(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	v := query.Get(key)
	return &v
}
