package workshop

import (
	"github.com/ImTheSquid/shuriken-workshop/internal/core"
)

// movePaddle turns held directional intents into at most one slot change
// per discrete press. The two-state debounce machine latches after a move
// and only releases on a tick with both directions clear, so holding a
// key for K ticks still moves a single slot. Left wins when both are held
// on the same tick; a press at a boundary still latches.
func (g *Game) movePaddle(in core.InputFrame) {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)

	if g.debounced {
		if !left && !right {
			g.debounced = false
		}
		return
	}

	if !left && !right {
		return
	}

	if left {
		if g.paddleSlot > 0 {
			g.paddleSlot--
		}
	} else if g.paddleSlot < g.cfg.Targets.Count-1 {
		g.paddleSlot++
	}
	g.debounced = true
}

// SlotX maps a slot index to its column center x. The paddle and the
// ninja columns share this mapping, so slot i sits exactly under ninja i.
func (g *Game) SlotX(slot int) float64 {
	a := g.cfg.Arena
	n := float64(g.cfg.Targets.Count)
	return a.LeftWall + a.RightWall/n + 2*a.RightWall*float64(slot)/n
}

// PaddleSlot returns the paddle's current slot index.
func (g *Game) PaddleSlot() int {
	return g.paddleSlot
}

// paddleWidth is the column width shrunk by the configured ratio.
func (g *Game) paddleWidth() float64 {
	return 2 * g.cfg.Arena.RightWall / (float64(g.cfg.Targets.Count) * g.cfg.Paddle.WidthRatio)
}

// paddleRect returns the paddle's current box.
func (g *Game) paddleRect() core.RectF {
	return core.RectFCenter(g.SlotX(g.paddleSlot), g.cfg.Paddle.Y, g.paddleWidth(), g.cfg.Paddle.Height)
}
