package profile

import (
	"slices"
	"testing"
)

func TestStart_NoMode(t *testing.T) {
	s := Start(WithPath(t.TempDir()), WithQuiet(true))
	if _, ok := s.(ignore); !ok {
		t.Fatalf("Start() without mode = %T, want no-op", s)
	}

	s.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	s := Start(WithMode("bogus"), WithPath(t.TempDir()), WithQuiet(true))
	if _, ok := s.(ignore); !ok {
		t.Fatalf("Start(bogus) = %T, want no-op", s)
	}

	s.Stop()
}

func TestOptions(t *testing.T) {
	c := apply(config{}, WithMode("cpu"), nil, WithPath("/tmp/x"), WithQuiet(true))

	if c != (config{mode: "cpu", path: "/tmp/x", quiet: true}) {
		t.Errorf("apply() = %+v", c)
	}
}

func TestModes(t *testing.T) {
	got := Modes()

	if !Enabled {
		if len(got) != 0 {
			t.Errorf("Modes() = %v, want none without %s tag", got, Tag)
		}

		return
	}

	if !slices.IsSorted(got) || !slices.Contains(got, "cpu") {
		t.Errorf("Modes() = %v", got)
	}
}
