package log

import (
	"bytes"
	"context"
	"testing"
)

func TestLogger_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Printf("hello %s\n", "world")

	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Printf output = %q, want %q", got, "hello world\n")
	}
}

func TestLogger_QuietSuppressesOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, true)
	l.Printf("hello\n")
	l.Println("world")

	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q, want nothing", buf.String())
	}
}

func TestLogger_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"verbose prints command", true, "$ git status --porcelain\n"},
		{"non-verbose is silent", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, false)
			l.Command("git", "status", "--porcelain")
			if got := buf.String(); got != tt.want {
				t.Errorf("Command output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger_Debugf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false, false).Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debugf wrote %q without verbose", buf.String())
	}

	New(&buf, true, false).Debugf("shown")
	if got := buf.String(); got != "shown" {
		t.Errorf("Debugf output = %q, want %q", got, "shown")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext() = nil, want no-op logger")
	}
	// Writing to the no-op logger must not panic.
	l.Printf("discarded")
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	ctx := WithLogger(context.Background(), l)

	if got := FromContext(ctx); got != l {
		t.Error("FromContext() did not return the attached logger")
	}
}
