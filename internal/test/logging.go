// Copyright 2024 Deutsche Telekom AG
//
// SPDX-License-Identifier: Apache-2.0

//go:build testing

package test

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// LogRecorderHook counts log events per level and keeps their messages.
type LogRecorderHook struct {
	mu       sync.Mutex
	records  map[zerolog.Level]int
	messages []string
}

func NewLogRecorder() *LogRecorderHook {
	return &LogRecorderHook{
		records: make(map[zerolog.Level]int),
	}
}

// Logger returns a debug level logger that discards its output and reports to the recorder.
func (h *LogRecorderHook) Logger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel).Hook(h)
}

func (h *LogRecorderHook) Run(_ *zerolog.Event, level zerolog.Level, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records[level]++
	h.messages = append(h.messages, message)
}

func (h *LogRecorderHook) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = make(map[zerolog.Level]int)
	h.messages = nil
}

func (h *LogRecorderHook) GetRecordCount(levels ...zerolog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	var count = 0
	for _, level := range levels {
		count += h.records[level]
	}
	return count
}

func (h *LogRecorderHook) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.messages...)
}
