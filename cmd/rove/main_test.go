package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestRunMarkup_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	body := `<div role="tablist"><button>Events</button><button>Volunteer</button></div><section></section><section></section>`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"markup", "-in", path, "-keys", "End"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `id="volunteer-tab" aria-controls="volunteer-panel" aria-selected="true" tabindex="0"`) {
		t.Fatalf("stdout missing synced volunteer tab:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "active=volunteer handled=1") {
		t.Fatalf("stderr = %q, want summary", stderr.String())
	}
}

func TestRunMarkup_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"markup", "-in", filepath.Join(t.TempDir(), "nope.html")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "open input") {
		t.Fatalf("stderr = %q, want open input error", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "not a terminal") {
		t.Fatalf("stderr = %q, want terminal error", stderr.String())
	}
}
