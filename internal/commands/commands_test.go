package commands

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"ballmachine/internal/commands/mocks"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd speed -name fast")
	if !ok || len(args) != 3 || args[0] != "speed" {
		t.Errorf("expected [speed -name fast], got %v %v", args, ok)
	}
	if _, ok := Parse("hello there"); ok {
		t.Error("expected a plain line not to be a command")
	}
	if args, ok := Parse("cmd   "); !ok || args != nil {
		t.Errorf("expected an empty command, got %v %v", args, ok)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.Execute(nil); !errors.Is(err, ErrNoCommand) {
		t.Errorf("expected ErrNoCommand, got %v", err)
	}
	if err := r.Execute([]string{"warp"}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := NewRegistry()
	RegisterGame(r, mocks.NewMockGame(ctrl))

	got, err := r.Usage("speed")
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	if got != "speed -name string (slow, medium or fast)" {
		t.Errorf("unexpected usage %q", got)
	}
	if got, _ := r.Usage("autoshoot"); got != "autoshoot -on (fire every few seconds)" {
		t.Errorf("unexpected usage %q", got)
	}
	if _, err := r.Usage("warp"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func exec(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	if !ok {
		t.Fatalf("not a command: %q", line)
	}
	return r.Execute(args)
}

func TestGameCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	g := mocks.NewMockGame(ctrl)
	r := NewRegistry()
	RegisterGame(r, g)

	gomock.InOrder(
		g.EXPECT().SetSpeed("fast").Return(nil),
		g.EXPECT().ChangePitch(float32(0.1)).Return(nil),
		g.EXPECT().ChangeYaw(float32(-0.25)).Return(nil),
		g.EXPECT().Restart("hard").Return(nil),
		g.EXPECT().UsePreset("arcade").Return(nil),
		g.EXPECT().SetAutoShoot(false).Return(nil),
		g.EXPECT().SetAutoShoot(true).Return(nil),
	)

	for _, line := range []string{
		"cmd speed -name fast",
		"cmd pitch -delta 0.1",
		"cmd yaw -delta -0.25",
		"cmd restart -difficulty hard",
		"cmd preset -name arcade",
		"cmd autoshoot -on=false",
		"cmd autoshoot",
	} {
		if err := exec(t, r, line); err != nil {
			t.Errorf("%q: %v", line, err)
		}
	}
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	g := mocks.NewMockGame(ctrl)
	r := NewRegistry()
	RegisterGame(r, g)

	g.EXPECT().ChangePitch(float32(0.2)).Return(nil)
	g.EXPECT().ChangePitch(float32(0)).Return(nil)
	g.EXPECT().Restart("hard").Return(nil)
	g.EXPECT().Restart("").Return(nil)

	_ = exec(t, r, "cmd pitch -delta 0.2")
	_ = exec(t, r, "cmd pitch")
	_ = exec(t, r, "cmd restart -difficulty hard")
	_ = exec(t, r, "cmd restart")

	if err := exec(t, r, "cmd speed"); !errors.Is(err, errMissingFlag) {
		t.Errorf("expected the missing name to be rejected, got %v", err)
	}
}

func TestGameErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	g := mocks.NewMockGame(ctrl)
	r := NewRegistry()
	RegisterGame(r, g)

	boom := errors.New("round over")
	g.EXPECT().SetSpeed("slow").Return(boom)
	if err := exec(t, r, "cmd speed -name slow"); !errors.Is(err, boom) {
		t.Errorf("expected the game error, got %v", err)
	}
	if err := exec(t, r, "cmd pitch -delta notanumber"); err == nil {
		t.Error("expected a flag parse error")
	}
}

func TestHelpListsCommands(t *testing.T) {
	r := NewRegistry()
	RegisterGame(r, nil)
	want := "commands: autoshoot, pitch, preset, restart, speed, yaw"
	if got := Help(r); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
