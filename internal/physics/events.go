package physics

//go:generate go tool mockgen -destination=./mocks/shot_listener_mock.go -package=mocks . ShotListener

// ShotListener is told about every ball that leaves the launcher.
type ShotListener interface {
	OnShoot()
}

// ShotListenerFunc adapts a plain function to ShotListener.
type ShotListenerFunc func()

// OnShoot calls f.
func (f ShotListenerFunc) OnShoot() {
	f()
}
