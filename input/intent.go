package input

import "github.com/gdamore/tcell/v2"

// Intent is what a terminal event asks the program to do
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentPause
	IntentToggleMute
	IntentFire
	IntentAimAt // X, Y carry the screen cell
	IntentAimLeft
	IntentAimRight
	IntentAimUp
	IntentAimDown
	IntentResize
)

// Action is one translated intent
type Action struct {
	Intent Intent
	X, Y   int
}

// Translator turns tcell events into actions
// Tracks button state so a held button fires once
type Translator struct {
	held bool
}

// Translate maps an event to zero or more actions
func (t *Translator) Translate(ev tcell.Event) []Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return []Action{{Intent: IntentResize}}

	case *tcell.EventKey:
		var r rune
		if ev.Key() == tcell.KeyRune {
			r = ev.Rune()
		}
		if intent := keyIntent(ev.Key(), r); intent != IntentNone {
			return []Action{{Intent: intent}}
		}
		return nil

	case *tcell.EventMouse:
		x, y := ev.Position()
		actions := []Action{{Intent: IntentAimAt, X: x, Y: y}}
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !t.held {
			actions = append(actions, Action{Intent: IntentFire, X: x, Y: y})
		}
		t.held = pressed
		return actions
	}
	return nil
}

// keyIntent is the key binding table
func keyIntent(key tcell.Key, r rune) Intent {
	var intent Intent
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		intent = IntentQuit
	case tcell.KeyLeft:
		intent = IntentAimLeft
	case tcell.KeyRight:
		intent = IntentAimRight
	case tcell.KeyUp:
		intent = IntentAimUp
	case tcell.KeyDown:
		intent = IntentAimDown
	case tcell.KeyEnter:
		intent = IntentFire
	case tcell.KeyRune:
		switch r {
		case ' ', 'f':
			intent = IntentFire
		case 'q':
			intent = IntentQuit
		case 'p':
			intent = IntentPause
		case 'm':
			intent = IntentToggleMute
		case 'h':
			intent = IntentAimLeft
		case 'l':
			intent = IntentAimRight
		case 'k':
			intent = IntentAimUp
		case 'j':
			intent = IntentAimDown
		}
	}
	return intent
}
