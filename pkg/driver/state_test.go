package driver

import (
	"errors"
	"testing"
)

var noop = func() error { return nil }

func TestUpdate(t *testing.T) {
	s := StateClosed
	steps := []State{StateOpened, StateRunning, StateClosed, StateOpened}
	for _, next := range steps {
		if err := s.Update(next, noop); err != nil {
			t.Fatalf("%s -> %s: unexpected error: %v", s, next, err)
		}
		if s != next {
			t.Fatalf("expected %s, got %s", next, s)
		}
	}
}

func TestUpdateInvalidTransition(t *testing.T) {
	s := StateClosed
	if err := s.Update(StateRunning, noop); err == nil {
		t.Fatal("expected an error when running a closed driver")
	}

	s = StateOpened
	if err := s.Update(StateOpened, noop); err == nil {
		t.Fatal("expected an error when opening twice")
	}

	s = StateRunning
	if err := s.Update(StateRunning, noop); err == nil {
		t.Fatal("expected an error when running twice")
	}

	if err := s.Update(State("paused"), noop); err == nil {
		t.Fatal("expected an error for an unknown state")
	}
}

func TestUpdateFailureKeepsState(t *testing.T) {
	s := StateClosed
	errOpen := errors.New("open failed")
	if err := s.Update(StateOpened, func() error { return errOpen }); !errors.Is(err, errOpen) {
		t.Fatalf("expected %v, got %v", errOpen, err)
	}
	if s != StateClosed {
		t.Fatalf("expected %s, got %s", StateClosed, s)
	}
}
