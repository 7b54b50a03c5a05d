//go:build integration

package integration

import (
	"regexp"
	"strings"
	"testing"
)

func TestSmokeGenerate(t *testing.T) {
	e := newEnv(t, "alpha\nbravo\ncharlie\nxy\n")
	stdout, stderr := e.mustRun()
	if !regexp.MustCompile(`^[a-z]+-[a-z]+\n$`).MatchString(stdout) {
		t.Errorf("unexpected codename %q", stdout)
	}
	if stderr != "" {
		t.Errorf("expected empty stderr, got %q", stderr)
	}
}

func TestSmokeSingleWord(t *testing.T) {
	e := newEnv(t, "Echo\n")
	stdout, _ := e.mustRun("-n", "3", "-d", "-")
	if stdout != "echo-echo-echo\n" {
		t.Errorf("got %q, want %q", stdout, "echo-echo-echo\n")
	}
}

func TestSmokeHelp(t *testing.T) {
	e := newEnv(t, "alpha\n")
	for _, flag := range []string{"-h", "--help"} {
		stdout, _ := e.mustRun(flag)
		if !strings.Contains(stdout, "codename") || !strings.Contains(stdout, "--num") {
			t.Errorf("%s: unexpected help:\n%s", flag, stdout)
		}
	}
}

func TestSmokeVersion(t *testing.T) {
	e := newEnv(t, "alpha\n")
	stdout, _ := e.mustRun("--version")
	if !strings.HasPrefix(stdout, "codename ") {
		t.Errorf("unexpected version output %q", stdout)
	}
}

func TestSmokeConfigRoundTrip(t *testing.T) {
	e := newEnv(t, "solo\n")
	e.mustRun("config", "num", "4")
	e.mustRun("config", "delimiter", "|")
	stdout, _ := e.mustRun()
	if stdout != "solo|solo|solo|solo\n" {
		t.Errorf("got %q", stdout)
	}
}
