package handler

import (
	"context"
	"io"
	"net/http"
)

// TemplComponent represents a templ component interface.
// This matches github.com/a-h/templ.Component without importing it.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// templResponse wraps a templ component to implement Response
type templResponse struct {
	component TemplComponent
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders a templ component as an HTML page with status 200.
//
//	return handler.Templ(pages.Hello(name))
func Templ(component TemplComponent) Response {
	return templResponse{component: component}
}

// TemplWithStatus is like Templ with an explicit status code.
func TemplWithStatus(component TemplComponent, status int) Response {
	return templResponse{component: component, status: status}
}
