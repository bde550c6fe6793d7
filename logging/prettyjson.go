// Package logging configures logrus for the trapcat binaries.
package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

// PrettyJSONFormatter is a logrus.Formatter that prints one indented JSON
// object per entry.
//
// It is geared toward CLI logs read by humans, not throughput.
type PrettyJSONFormatter struct {
	// Indent defaults to two spaces.
	Indent string
}

func (f *PrettyJSONFormatter) Format(e *log.Entry) ([]byte, error) {
	payload := make(map[string]any, len(e.Data)+4)
	for k, v := range e.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		payload[k] = v
	}

	when := e.Time
	if when.IsZero() {
		when = time.Now()
	}
	payload["time"] = when.Format(time.RFC3339Nano)
	payload["level"] = e.Level.String()
	payload["msg"] = e.Message
	if e.HasCaller() {
		payload["source"] = shortSource(e.Caller.File, e.Caller.Line)
	}

	indent := f.Indent
	if indent == "" {
		indent = "  "
	}
	b, err := json.MarshalIndent(payload, "", indent)
	if err != nil {
		// keep the line even if a field refuses to marshal
		b = []byte("{\"time\":" + strconv.Quote(payload["time"].(string)) +
			",\"level\":" + strconv.Quote(e.Level.String()) +
			",\"msg\":" + strconv.Quote(e.Message) + "}")
	}
	return append(b, '\n'), nil
}

func shortSource(file string, line int) string {
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return file + ":" + strconv.Itoa(line)
}

// Setup points the standard logger at stderr with the given level and
// format ("text", "json" or "pretty").
func Setup(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var formatter log.Formatter
	switch format {
	case "", "text":
		formatter = &log.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &log.JSONFormatter{}
	case "pretty":
		formatter = &PrettyJSONFormatter{}
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(formatter)
	return nil
}
