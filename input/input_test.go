package input

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    Key
		wantErr bool
	}{
		{"w", KeyA + 22, false},
		{"S", KeyA + 18, false},
		{"up", KeyUp, false},
		{" Down ", KeyDown, false},
		{"space", KeySpace, false},
		{"", KeyUnknown, true},
		{"f13", KeyUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, name := range []string{"a", "w", "z", "up", "down", "left", "right", "space"} {
		k, err := ParseKey(name)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", name, err)
		}
		if k.String() != name {
			t.Errorf("Key(%d).String() = %q, want %q", k, k.String(), name)
		}
	}
}

func TestSnapshotHold(t *testing.T) {
	base := Snapshot{}.Hold(KeyUp)
	both := base.Hold(KeyDown)

	if !both.KeyDown(KeyUp) || !both.KeyDown(KeyDown) {
		t.Error("expected both keys held")
	}
	if base.KeyDown(KeyDown) {
		t.Error("Hold must not mutate the receiver's key set")
	}
	if (Snapshot{}).KeyDown(KeyUp) {
		t.Error("zero snapshot should hold no keys")
	}
}

func TestRoundedMouse(t *testing.T) {
	s := Snapshot{MouseX: 10.4, MouseY: 10.6}
	x, y := s.RoundedMouse()
	if x != 10 || y != 11 {
		t.Errorf("RoundedMouse() = (%v, %v), want (10, 11)", x, y)
	}
}

func TestAutoclicker(t *testing.T) {
	a := Autoclicker{Every: 3, X: 5, Y: 6}
	var clicks int
	for tick := int32(0); tick < 9; tick++ {
		s := a.Snapshot(tick)
		if s.MouseX != 5 || s.MouseY != 6 {
			t.Fatalf("tick %d: pointer at (%v, %v)", tick, s.MouseX, s.MouseY)
		}
		if s.LeftPressed {
			clicks++
		}
	}
	if clicks != 3 {
		t.Errorf("clicks = %d, want 3", clicks)
	}

	if (Autoclicker{}).Snapshot(0).LeftPressed {
		t.Error("disabled autoclicker should never click")
	}
}
