package handler

import "net/http"

// redirectResponse performs a plain HTTP redirect
type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// RedirectWithCode creates a redirect response with a specific status code.
// Valid codes are 301 (Moved Permanently), 302 (Found), 303 (See Other),
// 307 (Temporary Redirect), and 308 (Permanent Redirect).
//
// Example:
//
//	return handler.RedirectWithCode("/hello", http.StatusFound)
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{
		url:  url,
		code: code,
	}
}
