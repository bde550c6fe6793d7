package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
)

func TestPrettyJSONFormatter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&PrettyJSONFormatter{})

	logger.WithFields(log.Fields{
		"variant": "pink",
		"turn":    3,
		"err":     errors.New("boom"),
	}).Warn("cat escaped")

	out := buf.String()
	if !strings.Contains(out, "\n  \"") {
		t.Fatalf("output not indented:\n%s", out)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if got["msg"] != "cat escaped" || got["level"] != "warning" || got["variant"] != "pink" {
		t.Fatalf("payload=%v", got)
	}
	if got["err"] != "boom" {
		t.Fatalf("error field should be its message, got %v", got["err"])
	}
	if got["turn"] != float64(3) {
		t.Fatalf("turn=%v", got["turn"])
	}
	if _, err := time.Parse(time.RFC3339Nano, got["time"].(string)); err != nil {
		t.Fatalf("time: %v", err)
	}
	if _, ok := got["source"]; ok {
		t.Fatalf("source reported without ReportCaller")
	}
}

func TestPrettyJSONFormatter_Caller(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetReportCaller(true)
	logger.SetFormatter(&PrettyJSONFormatter{Indent: "\t"})

	logger.Info("hello")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	src, _ := got["source"].(string)
	if !strings.HasPrefix(src, "prettyjson_test.go:") {
		t.Fatalf("source=%q", src)
	}
}

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetFormatter(&log.TextFormatter{})

	if err := Setup("debug", "pretty"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("level=%v", log.GetLevel())
	}
	if err := Setup("loud", "text"); err == nil {
		t.Fatalf("bad level accepted")
	}
	if err := Setup("info", "xml"); err == nil {
		t.Fatalf("bad format accepted")
	}
}
