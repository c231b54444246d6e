package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// Snapshot states
const (
	SnapshotIdle    = "idle"
	SnapshotLoading = "loading"
	SnapshotReady   = "ready"
	SnapshotFailed  = "failed"
)

// SnapshotFSM tracks the load lifecycle of the in-memory accounting snapshot
type SnapshotFSM struct {
	fsm *fsm.FSM
}

// NewSnapshotFSM creates a snapshot state machine in the idle state
func NewSnapshotFSM() *SnapshotFSM {
	return &SnapshotFSM{
		fsm: fsm.NewFSM(
			SnapshotIdle,
			fsm.Events{
				// idle/ready/failed → loading
				{Name: "load", Src: []string{SnapshotIdle, SnapshotReady, SnapshotFailed}, Dst: SnapshotLoading},

				// loading → ready
				{Name: "loaded", Src: []string{SnapshotLoading}, Dst: SnapshotReady},

				// loading → failed
				{Name: "fail", Src: []string{SnapshotLoading}, Dst: SnapshotFailed},
			},
			fsm.Callbacks{},
		),
	}
}

// BeginLoad transitions to loading; it fails while a load is already running.
// Transitions ignore cancellation of ctx: a cancelled event leaves looplab/fsm
// with a pending transition that blocks every later event.
func (s *SnapshotFSM) BeginLoad(ctx context.Context) error {
	if err := s.fsm.Event(context.WithoutCancel(ctx), "load"); err != nil {
		return fmt.Errorf("cannot start snapshot load in state %s: %w", s.fsm.Current(), err)
	}
	return nil
}

// Loaded marks the load as complete
func (s *SnapshotFSM) Loaded(ctx context.Context) error {
	if err := s.fsm.Event(context.WithoutCancel(ctx), "loaded"); err != nil {
		return fmt.Errorf("failed to complete snapshot load: %w", err)
	}
	return nil
}

// Fail marks the load as complete but unsuccessful
func (s *SnapshotFSM) Fail(ctx context.Context) error {
	if err := s.fsm.Event(context.WithoutCancel(ctx), "fail"); err != nil {
		return fmt.Errorf("failed to mark snapshot load as failed: %w", err)
	}
	return nil
}

// Current returns the current state
func (s *SnapshotFSM) Current() string {
	return s.fsm.Current()
}

// Loading reports whether no load has completed yet or one is running
func (s *SnapshotFSM) Loading() bool {
	state := s.fsm.Current()
	return state == SnapshotIdle || state == SnapshotLoading
}
