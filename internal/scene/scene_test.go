package scene

import (
	"testing"

	"ballmachine/internal/session"
	"ballmachine/internal/vecmath"
)

func TestChaseCameraSitsBehindAndAbove(t *testing.T) {
	l := session.LauncherView{
		Position: vecmath.Vec3{0, 0, 5},
		Tip:      vecmath.Vec3{0, 1, 4},
		Dir:      vecmath.Vec3{0, 0, -1},
	}
	pos, target := ChaseCamera(l, 1)
	if pos[2] <= l.Position[2] {
		t.Errorf("expected the camera behind the launcher (+Z), got %v", pos)
	}
	if pos[1] <= l.Tip[1] {
		t.Errorf("expected the camera above the barrel, got %v", pos)
	}
	if target[2] >= l.Tip[2] {
		t.Errorf("expected the camera to look down the aim, got target %v", target)
	}
}

func TestChaseCameraFollowsHeading(t *testing.T) {
	l := session.LauncherView{Heading: 1.5707964, Dir: vecmath.Direction(1.5707964, 0)}
	pos, _ := ChaseCamera(l, 1)
	// Facing -X, so the camera trails on +X.
	if pos[0] <= 0 {
		t.Errorf("expected the camera on +X after turning left, got %v", pos)
	}
}

func TestCameraModeString(t *testing.T) {
	if Chase.String() != "chase" || Overview.String() != "overview" || Free.String() != "free" {
		t.Error("unexpected camera mode names")
	}
}
