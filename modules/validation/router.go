package validation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ibancheck/handler"
	"github.com/dmitrymomot/ibancheck/pkg/binder"
	"github.com/dmitrymomot/ibancheck/pkg/validator"
)

// ValidateRequest is bound from the query string of GET /validate.
type ValidateRequest struct {
	Account string `query:"account"`
}

// Handle returns the routes of the validation module. Mount it at /validate.
//
//	r.Mount("/validate", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.handleValidate,
		handler.WithBinders[handler.Context, ValidateRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
	))
	r.Post("/", s.reject(handler.ErrMethodNotSupported))

	r.MethodNotAllowed(s.reject(handler.ErrMethodNotAllowed))
	r.NotFound(s.reject(handler.ErrNotFound))

	return r
}

func (s *Service) handleValidate(ctx handler.Context, req ValidateRequest) handler.Response {
	if err := validator.Apply(
		validator.RequiredQueryParam("account", req.Account),
	); err != nil {
		return handler.Error(err)
	}

	res, err := s.Validate(ctx, req.Account)
	if err != nil {
		return handler.Error(err)
	}

	return handler.JSON(res)
}

// reject responds to every request with err through the error handler.
func (s *Service) reject(err error) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}, handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler))
}
