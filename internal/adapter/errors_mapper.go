package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/werlleyg/boilerplate-api/internal/validators"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// errorEnvelope mirrors the body the service writes for failed requests.
// Message is either a string or a list of field issues.
type errorEnvelope struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		kind:       ErrUnexpectedStatus,
	}
	if kind, ok := statusErrors[resp.StatusCode()]; ok {
		apiErr.kind = kind
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}

	apiErr.Status = envelope.Status
	if err := json.Unmarshal(envelope.Message, &apiErr.Message); err != nil {
		_ = json.Unmarshal(envelope.Message, &apiErr.Issues)
		apiErr.Message = envelope.Status
	}

	return apiErr
}

// IssuesOf returns the validation issues carried by err, if any.
func IssuesOf(err error) []validators.FieldError {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	return apiErr.Issues
}
