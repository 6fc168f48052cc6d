package audit

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func resetOutput() {
	SetOutput(os.Stderr)
}

func TestLogged_WritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer resetOutput()

	called := false
	action := Logged("search", func() {
		called = true
	})

	action()

	if !called {
		t.Error("Expected wrapped action to run")
	}

	output := buf.String()
	if output != "Action logged: search called\n" {
		t.Errorf("Unexpected audit line: %q", output)
	}
}

func TestLogged_LineWrittenBeforeAction(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer resetOutput()

	var seenAtCallTime string
	action := Logged("submit_comment", func() {
		seenAtCallTime = buf.String()
	})

	action()

	if !strings.Contains(seenAtCallTime, "Action logged: submit_comment called") {
		t.Errorf("Audit line must be written before the action runs, saw %q", seenAtCallTime)
	}
}

func TestLogged_OneLinePerInvocation(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer resetOutput()

	action := Logged("rebuild_grid", func() {})
	action()
	action()
	action()

	lines := strings.Count(buf.String(), "Action logged: rebuild_grid called")
	if lines != 3 {
		t.Errorf("Expected 3 audit lines, got %d", lines)
	}
}
