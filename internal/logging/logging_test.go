package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "text", &buf)

	New("engine").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "component=engine") {
		t.Errorf("expected component attribute, got: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message, got: %s", out)
	}
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", "json", &buf)

	New("engine").Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"engine"`) {
		t.Errorf("expected JSON component field, got: %s", out)
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", "text", &buf)

	New("engine").Info("too quiet")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got: %s", buf.String())
	}

	New("engine").Warn("loud enough")
	if !strings.Contains(buf.String(), "loud enough") {
		t.Errorf("warn should pass at warn level, got: %s", buf.String())
	}
}
