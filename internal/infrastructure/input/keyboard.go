package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StickDeadZone is the gamepad stick dead zone
const StickDeadZone = 0.2

// Keyboard reads keyboard and standard-layout gamepad state
type Keyboard struct {
	gamepads []ebiten.GamepadID
}

// NewKeyboard creates a device input source
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll reads the current device state
func (k *Keyboard) Poll() Snapshot {
	s := Snapshot{
		Horizontal: keyAxis(ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyD, ebiten.KeyArrowRight),
		Vertical:   keyAxis(ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeyW, ebiten.KeyArrowUp),
		Jump:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Throw:      inpututil.IsKeyJustPressed(ebiten.KeyF),
	}

	if id, ok := k.gamepad(); ok {
		if s.Horizontal == 0 {
			s.Horizontal = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		}
		if s.Vertical == 0 {
			// stick up is negative
			s.Vertical = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		}
		s.Jump = s.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		s.Throw = s.Throw || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}

	s.Horizontal = clampAxis(s.Horizontal, StickDeadZone)
	s.Vertical = clampAxis(s.Vertical, StickDeadZone)
	return s
}

// gamepad returns the first connected gamepad with the standard layout
func (k *Keyboard) gamepad() (ebiten.GamepadID, bool) {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

// keyAxis returns -1, 0 or 1 from two pairs of opposing keys
func keyAxis(negA, negB, posA, posB ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(negA) || ebiten.IsKeyPressed(negB) {
		v--
	}
	if ebiten.IsKeyPressed(posA) || ebiten.IsKeyPressed(posB) {
		v++
	}
	return v
}
