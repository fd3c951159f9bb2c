package model

import "testing"

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, nil)", d.String(), got, err, d)
		}
	}
	if got, err := ParseDirection("UP"); err != nil || got != DirUp {
		t.Errorf("ParseDirection is case-insensitive: got (%v, %v)", got, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(\"sideways\") should fail")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite = %v, want %v", d, got, want)
		}
	}
}

func TestParseRotateDirection(t *testing.T) {
	tests := []struct {
		in   string
		want RotateDirection
	}{
		{"forward", RotateForward},
		{"backward", RotateBackward},
		{"cw", RotateForward},
		{"ccw", RotateBackward},
		{"Clockwise", RotateForward},
	}
	for _, tt := range tests {
		got, err := ParseRotateDirection(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRotateDirection(%q) = (%v, %v), want (%v, nil)", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseRotateDirection("spin"); err == nil {
		t.Error("ParseRotateDirection(\"spin\") should fail")
	}
}

func TestParseRoleTag(t *testing.T) {
	tests := []struct {
		in   string
		want RoleTag
	}{
		{"", RoleOrdinary},
		{"node", RoleOrdinary},
		{"area", RoleFocusArea},
		{"scroll", RoleScrollable},
		{"parking", RoleFocusParking},
	}
	for _, tt := range tests {
		got, err := ParseRoleTag(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRoleTag(%q) = (%v, %v), want (%v, nil)", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseRoleTag("button"); err == nil {
		t.Error("ParseRoleTag(\"button\") should fail")
	}
}
