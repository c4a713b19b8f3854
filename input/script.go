package input

// Autoclicker produces scripted input for headless runs: a left click at a fixed
// point every Every frames, starting on frame 0.
type Autoclicker struct {
	Every int
	X, Y  float32
}

// Snapshot returns the input for the given frame.
func (a Autoclicker) Snapshot(tick int32) Snapshot {
	if a.Every <= 0 {
		return Snapshot{MouseX: a.X, MouseY: a.Y}
	}
	if int(tick)%a.Every == 0 {
		return Click(a.X, a.Y)
	}
	return Snapshot{MouseX: a.X, MouseY: a.Y}
}
