package main

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// helloPage is the landing page served at /hello.
func helloPage(greeting string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1 style='color:red'>"+templ.EscapeString(greeting)+"</h1>")
		return err
	})
}
