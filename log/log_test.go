package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestInfofAndJSON(t *testing.T) {
	var buf bytes.Buffer
	SetInfoOutput(&buf)
	defer func() { infoLogger = nil }()

	Infof(context.Background(), "words: %v", JSON([]string{"agni"}))
	if !strings.Contains(buf.String(), `words: [\"agni\"]`) {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestErrorf_DisabledIsNoop(t *testing.T) {
	errorLogger = nil
	Errorf(context.Background(), "ignored %d", 1)
}
