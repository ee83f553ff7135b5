package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Account records an account number as received, under the key "account".
func Account(account string) slog.Attr {
	return slog.String("account", account)
}

// Country records a two-letter country code under the key "country".
// If code is empty, it returns an empty Attr.
func Country(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("country", code)
}

// Verdict records the validation outcome as "OK" or "NOTOK".
func Verdict(correct bool) slog.Attr {
	if correct {
		return slog.String("verdict", "OK")
	}
	return slog.String("verdict", "NOTOK")
}
