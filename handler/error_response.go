package handler

import "net/http"

// errorResponse hands its error to the ErrorHandler configured on Wrap.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that writes nothing and reports err to the
// route's ErrorHandler, so handlers get the same logging and error envelope
// as binding failures.
//
//	if err := validator.Apply(rules...); err != nil {
//		return handler.Error(err)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
