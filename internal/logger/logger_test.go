package logger

import "testing"

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := New("debug", format)
		if err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		if !l.Core().Enabled(-1) {
			t.Fatalf("format %s: expected debug level enabled", format)
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatalf("expected invalid level error")
	}
}
