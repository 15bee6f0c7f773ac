package terminal

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"ballmachine/internal/commands"
	"ballmachine/internal/commands/mocks"
	"ballmachine/internal/logger"
)

func newTestTerminal(t *testing.T) (*Terminal, *mocks.MockGame, *logger.Logger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	g := mocks.NewMockGame(ctrl)
	reg := commands.NewRegistry()
	commands.RegisterGame(reg, g)
	log := logger.NewWithWriter(&bytes.Buffer{})
	return New(log, reg), g, log
}

func TestSubmitRunsCommand(t *testing.T) {
	term, g, log := newTestTerminal(t)
	g.EXPECT().SetSpeed("slow").Return(nil)

	term.Submit("cmd speed -name slow")
	lines := log.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "cmd speed -name slow") {
		t.Errorf("expected only the echoed command, got %v", lines)
	}
}

func TestSubmitLogsFailures(t *testing.T) {
	term, _, log := newTestTerminal(t)
	term.Submit("cmd warp -to mars")
	lines := log.Lines()
	if len(lines) != 2 || !strings.Contains(lines[1], "command failed") {
		t.Errorf("expected the failure in the log, got %v", lines)
	}
}

func TestSubmitHelpAndNotes(t *testing.T) {
	term, _, log := newTestTerminal(t)
	term.Submit("cmd help")
	term.Submit("nice shot")
	lines := log.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected echo, help and note, got %v", lines)
	}
	if !strings.Contains(lines[1], "commands: autoshoot") {
		t.Errorf("expected the command list, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "nice shot") {
		t.Errorf("expected the note to be logged, got %q", lines[2])
	}
}

func TestTypingAndBackspace(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.Type("cmd pitch ")
	term.Type("é")
	term.Backspace()
	if got := term.Input(); got != "cmd pitch " {
		t.Errorf("expected the accented rune removed, got %q", got)
	}
	term.Backspace()
	term.Backspace()
	term.Enter()
	if term.Input() != "" {
		t.Errorf("expected Enter to clear the line, got %q", term.Input())
	}
}

func TestRecallHistory(t *testing.T) {
	term, g, _ := newTestTerminal(t)
	g.EXPECT().SetSpeed("fast").Return(nil).Times(1)
	g.EXPECT().Restart("hard").Return(nil).Times(1)

	term.Submit("cmd speed -name fast")
	term.Submit("cmd restart -difficulty hard")
	term.Type("half typed")

	term.Recall(-1)
	if got := term.Input(); got != "cmd restart -difficulty hard" {
		t.Errorf("expected the newest line, got %q", got)
	}
	term.Recall(-1)
	term.Recall(-1)
	if got := term.Input(); got != "cmd speed -name fast" {
		t.Errorf("expected recall to stop at the oldest line, got %q", got)
	}
	term.Recall(1)
	term.Recall(1)
	if got := term.Input(); got != "half typed" {
		t.Errorf("expected the draft back, got %q", got)
	}
}

func TestRecallSkipsRepeats(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.Submit("note")
	term.Submit("note")
	if len(term.history) != 1 {
		t.Errorf("expected a repeated line stored once, got %v", term.history)
	}
}

func TestScrollWindow(t *testing.T) {
	term, _, log := newTestTerminal(t)
	for i := 0; i < maxLinesOnScreen+6; i++ {
		log.Log("line")
	}
	log.Log("newest")

	lines, scrolled := term.visible()
	if scrolled || len(lines) != maxLinesOnScreen || lines[len(lines)-1] == "" {
		t.Fatalf("expected the newest page, got %d lines scrolled=%v", len(lines), scrolled)
	}
	if !strings.Contains(lines[len(lines)-1], "newest") {
		t.Errorf("expected the newest line last, got %q", lines[len(lines)-1])
	}

	term.Scroll(100)
	if term.scroll != 7 {
		t.Errorf("expected scroll clamped to 7, got %d", term.scroll)
	}
	lines, scrolled = term.visible()
	if !scrolled || strings.Contains(lines[len(lines)-1], "newest") {
		t.Error("expected an older page")
	}

	term.Submit("back to bottom")
	if term.scroll != 0 {
		t.Errorf("expected Submit to return to the newest line, got %d", term.scroll)
	}
}

func TestSubmitHelpForOneCommand(t *testing.T) {
	term, _, log := newTestTerminal(t)
	term.Submit("cmd help pitch")
	term.Submit("cmd help warp")
	lines := log.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected two echoes and two replies, got %v", lines)
	}
	if !strings.Contains(lines[1], "pitch -delta float") {
		t.Errorf("expected the pitch usage, got %q", lines[1])
	}
	if !strings.Contains(lines[3], "no such command") {
		t.Errorf("expected a warning for an unknown command, got %q", lines[3])
	}
}
