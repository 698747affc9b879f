package commands

import (
	"context"
	"strings"
	"testing"
)

func TestDispatch_UnknownCommand(t *testing.T) {
	out := captureOut(t)
	cfg := testCfg(t, "http://localhost:0")

	if code := Dispatch(context.Background(), cfg, []string{"frobnicate"}); code != 2 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(out.String(), "Unknown command: frobnicate") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestDispatch_NoArgsShowsUsage(t *testing.T) {
	out := captureOut(t)
	cfg := testCfg(t, "http://localhost:0")

	if code := Dispatch(context.Background(), cfg, nil); code != 2 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(out.String(), "Insightly CLI") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestDispatch_HelpForCommand(t *testing.T) {
	out := captureOut(t)
	cfg := testCfg(t, "http://localhost:0")

	if code := Dispatch(context.Background(), cfg, []string{"help", "login"}); code != 0 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(out.String(), "login <email> [password]") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestDispatch_UsageErrorExitCode(t *testing.T) {
	out := captureOut(t)
	cfg := testCfg(t, "http://localhost:0")

	if code := Dispatch(context.Background(), cfg, []string{"link-add"}); code != 2 {
		t.Fatalf("exit code: %d", code)
	}
	if !strings.Contains(out.String(), "Usage: link-add <title> <url>") {
		t.Fatalf("output: %q", out.String())
	}
}

func TestRegistry_AllCommandsPresent(t *testing.T) {
	want := []string{
		"login", "logout", "register", "status",
		"profile", "profile-update",
		"links", "link-add", "link-edit", "link-del",
		"feedback", "feedback-del", "feedback-set", "stats",
		"view", "send-feedback", "public-feedback",
	}
	for _, name := range want {
		if _, ok := Get(name); !ok {
			t.Fatalf("command %q not registered", name)
		}
	}
}
