// Command sdfwasm builds the glyph generator as a WebAssembly reactor.
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o sdfglyph.wasm ./cmd/sdfwasm
//
// The module exports one process-wide sdfglyph.Context through a raw
// positional ABI: the host asks for a font region, copies font bytes into
// it, then calls one of the generate_* exports with a pointer to room for
// ten float32 metrics. See exports.go for the full list.
//
// Set SDFGLYPH_LOG to "debug" or "warn" to log to stderr.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sdfglyph"
)

// Reactor modules never run main; exports are called by the host.
func main() {}

func init() {
	configureLogging(os.Getenv, os.Stderr)
}

// configureLogging installs a stderr logger when SDFGLYPH_LOG names a
// level.
func configureLogging(getenv func(string) string, w *os.File) {
	var level slog.Level
	switch strings.ToLower(getenv("SDFGLYPH_LOG")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	default:
		return
	}
	sdfglyph.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// axisTag decodes a NUL-terminated tag, keeping at most four bytes.
func axisTag(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	if len(b) > 4 {
		b = b[:4]
	}
	return string(b)
}
