package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the envelope rendered for every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body, unwrapped, with status 200 unless
// overridden. Values implementing json.Marshaler control their own shape.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError renders err as {"error": "..."}. Status and message come from
// the error's classification; options can override the status.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)

	r := &jsonResponse{
		status: info.StatusCode,
		body:   ErrorBody{Error: info.Message},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}
