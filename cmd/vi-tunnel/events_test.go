package main

import (
	"testing"

	"github.com/lixenwraith/vi-tunnel/input"
	"github.com/lixenwraith/vi-tunnel/parameter"
)

func TestDispatchAimAndFire(t *testing.T) {
	buf := input.NewBuffer()
	sys := make(chan input.Intent, 4)

	dispatch([]input.Action{
		{Intent: input.IntentAimAt, X: 0, Y: 0},
		{Intent: input.IntentFire},
		{Intent: input.IntentFire},
	}, buf, 80, 25, sys)

	snap := buf.Drain()
	if snap.Fires != 2 {
		t.Errorf("Expected 2 fires, got %d", snap.Fires)
	}
	if snap.AimX >= 0 || snap.AimY <= 0 {
		t.Errorf("Expected top-left aim, got (%v,%v)", snap.AimX, snap.AimY)
	}
	if len(sys) != 0 {
		t.Errorf("Expected no system intents, got %d", len(sys))
	}
}

func TestDispatchNudge(t *testing.T) {
	buf := input.NewBuffer()
	sys := make(chan input.Intent, 4)

	dispatch([]input.Action{{Intent: input.IntentAimRight}, {Intent: input.IntentAimUp}}, buf, 80, 25, sys)

	x, y := buf.Aim()
	if x != parameter.AimNudgeStep || y != parameter.AimNudgeStep {
		t.Errorf("Expected aim (%v,%v), got (%v,%v)", parameter.AimNudgeStep, parameter.AimNudgeStep, x, y)
	}
}

func TestDispatchSystemIntents(t *testing.T) {
	buf := input.NewBuffer()
	sys := make(chan input.Intent, 4)

	dispatch([]input.Action{
		{Intent: input.IntentPause},
		{Intent: input.IntentToggleMute},
		{Intent: input.IntentQuit},
	}, buf, 80, 25, sys)

	want := []input.Intent{input.IntentPause, input.IntentToggleMute, input.IntentQuit}
	for i, w := range want {
		if got := <-sys; got != w {
			t.Errorf("Intent %d: expected %v, got %v", i, w, got)
		}
	}
}
