// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		emitDebug bool
		emitWarn  bool
	}{
		{name: "default is error", env: "", emitDebug: false, emitWarn: false},
		{name: "debug", env: "debug", emitDebug: true, emitWarn: true},
		{name: "warn", env: "WARN", emitDebug: false, emitWarn: true},
		{name: "unknown falls back to error", env: "chatty", emitDebug: false, emitWarn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BKCTL_LOG", tt.env)
			var buf bytes.Buffer
			InitLoggerTo(&buf)

			Debugf("debug %d", 1)
			assert.Equal(t, tt.emitDebug, strings.Contains(buf.String(), " D debug 1"))

			buf.Reset()
			Warnf("careful %s", "now")
			assert.Equal(t, tt.emitWarn, strings.Contains(buf.String(), " W careful now"))
		})
	}
}

func TestTracef(t *testing.T) {
	t.Setenv("BKCTL_LOG", "trace")
	var buf bytes.Buffer
	InitLoggerTo(&buf)

	Tracef("page=%d", 2)
	assert.Contains(t, buf.String(), " T page=2")

	t.Setenv("BKCTL_LOG", "debug")
	InitLoggerTo(&buf)
	buf.Reset()
	Tracef("page=%d", 3)
	assert.Empty(t, buf.String())
}

func TestWithErrorAppendsField(t *testing.T) {
	t.Setenv("BKCTL_LOG", "warn")
	var buf bytes.Buffer
	InitLoggerTo(&buf)

	WithError(errors.New("boom")).Warn("cache write failed")
	assert.Contains(t, buf.String(), "W cache write failed error=boom")
}
