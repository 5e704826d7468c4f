// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

const tracePrefix = "TRACE: "

var traceEnabled bool

// levels maps BKCTL_LOG values to apex levels. trace is debug plus Tracef.
var levels = map[string]log.Level{
	"trace": log.DebugLevel,
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

var letters = map[log.Level]string{
	log.DebugLevel: "D",
	log.InfoLevel:  "I",
	log.WarnLevel:  "W",
	log.ErrorLevel: "E",
	log.FatalLevel: "F",
}

// InitLogger sets up apex with the bkctl handler writing to stderr, so log
// lines never mix with command output.
func InitLogger() {
	InitLoggerTo(os.Stderr)
}

// InitLoggerTo is InitLogger with an explicit destination. The level comes
// from BKCTL_LOG and anything unrecognized means error.
func InitLoggerTo(w io.Writer) {
	name := strings.ToLower(strings.TrimSpace(os.Getenv("BKCTL_LOG")))
	level, ok := levels[name]
	if !ok {
		name, level = "error", log.ErrorLevel
	}
	traceEnabled = name == "trace"

	log.SetHandler(&CustomHandler{Writer: w})
	log.SetLevel(level)
}

// CustomHandler writes "<timestamp> <level> <message> [k=v ...]" lines.
type CustomHandler struct {
	Writer io.Writer
	mu     sync.Mutex
}

// HandleLog implements log.Handler.
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	letter, message := letters[e.Level], e.Message
	if rest, ok := strings.CutPrefix(message, tracePrefix); ok {
		letter, message = "T", rest
	}
	if letter == "" {
		letter = "?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", time.Now().Format("2006-01-02 15:04:05"), letter, message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(w, b.String())
	return err
}

// Tracef logs below debug. It is a no-op unless BKCTL_LOG=trace.
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Debug(msg string) {
	log.Debug(msg)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry carrying err as the error field.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
