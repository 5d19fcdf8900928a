package util

import (
	"github.com/accumulo/accumulo-util/lib/common"
	"github.com/spf13/viper"
	"strings"
	"testing"
)

// TestWrapStringShort tests that short help texts stay on one line.
func TestWrapStringShort(t *testing.T) {
	text := "a short help text"
	if got := WrapString(text); got != text {
		t.Errorf("expected %q, got %q", text, got)
	}
}

// TestWrapStringLong tests that long help texts break at the wrap width.
func TestWrapStringLong(t *testing.T) {
	text := strings.Repeat("word ", 30)
	wrapped := WrapString(text)

	if !strings.Contains(wrapped, "\n") {
		t.Fatal("expected the text to wrap")
	}
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > Wrap {
			t.Errorf("line longer than %d characters: %q", Wrap, line)
		}
	}
}

// TestApplyLogLevel tests valid, empty and invalid log level values.
func TestApplyLogLevel(t *testing.T) {
	t.Cleanup(func() {
		viper.Set("log-level", "")
		common.SetLogLevel(common.LevelInfo)
	})

	viper.Set("log-level", "debug")
	if err := ApplyLogLevel(); err != nil {
		t.Errorf("unexpected error for debug: %v", err)
	}

	viper.Set("log-level", "")
	if err := ApplyLogLevel(); err != nil {
		t.Errorf("unexpected error for empty value: %v", err)
	}

	viper.Set("log-level", "noisy")
	if err := ApplyLogLevel(); err == nil {
		t.Error("expected error for invalid value")
	}
}
