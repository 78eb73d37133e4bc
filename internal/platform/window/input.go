package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gem-crossing/internal/core"
)

// keyBindings mirrors the terminal key map.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:     core.ActionUp,
	ebiten.KeyW:           core.ActionUp,
	ebiten.KeyArrowDown:   core.ActionDown,
	ebiten.KeyS:           core.ActionDown,
	ebiten.KeyArrowLeft:   core.ActionLeft,
	ebiten.KeyA:           core.ActionLeft,
	ebiten.KeyArrowRight:  core.ActionRight,
	ebiten.KeyD:           core.ActionRight,
	ebiten.KeyEnter:       core.ActionConfirm,
	ebiten.KeyNumpadEnter: core.ActionConfirm,
	ebiten.KeySpace:       core.ActionRestart,
	ebiten.KeyR:           core.ActionRestart,
	ebiten.KeyP:           core.ActionPause,
	ebiten.KeyEscape:      core.ActionPause,
	ebiten.KeyB:           core.ActionBack,
	ebiten.KeyQ:           core.ActionQuit,
}

// actionsFor builds the input frame for the keys pressed this frame.
func actionsFor(keys []ebiten.Key) core.InputFrame {
	frame := core.NewInputFrame()
	for _, k := range keys {
		if a, ok := keyBindings[k]; ok {
			frame.Set(a)
		}
	}
	return frame
}
