package sl

import (
	"log/slog"
)

// Err creates a slog.Attr with the given error. A nil error yields an empty value
// so call sites can log unconditionally.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("")}
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op creates the "op" attribute that names the operation producing the record.
func Op(name string) slog.Attr {
	return slog.String("op", name)
}
