package debuglog

import (
	"bytes"
	"testing"
)

func withCapturedConsole(t *testing.T, fn func()) string {
	t.Helper()
	orig := consoleWriteFn
	defer func() { consoleWriteFn = orig }()

	var buf bytes.Buffer
	consoleWriteFn = func(p []byte) (int, error) {
		return buf.Write(p)
	}

	origThreshold := Threshold
	Threshold = Spew
	defer func() { Threshold = origThreshold }()

	fn()
	return buf.String()
}

func TestPrintfVerbs(t *testing.T) {
	specs := []struct {
		run func()
		want string
	}{
		{func() { Printf(Info, "no args") }, "no args"},
		{func() { Printf(Info, "%t", true) }, "true"},
		{func() { Printf(Info, "%t", false) }, "false"},
		{func() { Printf(Info, "%s arg", "STRING") }, "STRING arg"},
		{func() { Printf(Info, "%s arg", []byte("BYTES")) }, "BYTES arg"},
		{func() { Printf(Info, "%d", 42) }, "42"},
		{func() { Printf(Info, "%x", uintptr(0x1a)) }, "0x1a"},
		{func() { Printf(Info, "%o", 8) }, "10"},
		{func() { Printf(Info, "%d", -5) }, "-5"},
	}

	for _, s := range specs {
		got := withCapturedConsole(t, s.run)
		if got != s.want {
			t.Errorf("got %q, want %q", got, s.want)
		}
	}
}

func TestPrintfRespectsThreshold(t *testing.T) {
	orig := consoleWriteFn
	defer func() { consoleWriteFn = orig }()
	var buf bytes.Buffer
	consoleWriteFn = func(p []byte) (int, error) { return buf.Write(p) }

	origThreshold := Threshold
	Threshold = Critical
	defer func() { Threshold = origThreshold }()

	Printf(Spew, "should not appear")
	if buf.Len() != 0 {
		t.Fatalf("Spew message written despite Threshold=Critical: %q", buf.String())
	}

	Printf(Always, "should appear")
	if buf.String() != "should appear" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPrintfMissingArg(t *testing.T) {
	got := withCapturedConsole(t, func() { Printf(Info, "%d") })
	if got != "(MISSING)" {
		t.Fatalf("got %q, want (MISSING)", got)
	}
}
