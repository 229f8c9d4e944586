package main

import (
	"github.com/lixenwraith/vi-tunnel/input"
	"github.com/lixenwraith/vi-tunnel/parameter"
	"github.com/lixenwraith/vi-tunnel/render"
)

// dispatch routes translated actions: aim and fire go to the buffer,
// everything the frame loop must decide on goes to sys
// w, h is the screen size used to map mouse cells to NDC
func dispatch(actions []input.Action, buf *input.Buffer, w, h int, sys chan<- input.Intent) {
	for _, a := range actions {
		switch a.Intent {
		case input.IntentAimAt:
			buf.SetAim(render.CellToNDC(a.X, a.Y, w, h))
		case input.IntentFire:
			buf.Fire()
		case input.IntentAimLeft:
			buf.NudgeAim(-parameter.AimNudgeStep, 0)
		case input.IntentAimRight:
			buf.NudgeAim(parameter.AimNudgeStep, 0)
		case input.IntentAimUp:
			buf.NudgeAim(0, parameter.AimNudgeStep)
		case input.IntentAimDown:
			buf.NudgeAim(0, -parameter.AimNudgeStep)
		case input.IntentQuit, input.IntentPause, input.IntentToggleMute, input.IntentResize:
			select {
			case sys <- a.Intent:
			default:
				// Loop is behind; quit must not be lost
				if a.Intent == input.IntentQuit {
					sys <- a.Intent
				}
			}
		}
	}
}
