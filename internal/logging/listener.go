package logging

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

// EventListener returns a puzzle.Listener that logs every engine event.
// Phase traffic goes out at debug level, resolved attacks at info, and
// truncated cascades at warn.
func EventListener(logger *log.Logger) puzzle.Listener {
	return puzzle.ListenerFunc(func(e puzzle.Event) {
		phase := e.Phase().String()
		switch e := e.(type) {
		case puzzle.OpeningEvent:
			logger.Debug("board populated", "phase", phase, "cells", len(e.Board))
		case puzzle.MoveEvent:
			logger.Debug("awaiting input", "phase", phase)
		case puzzle.GrabEvent:
			logger.Debug("grab", "phase", phase, "index", e.Index)
		case puzzle.SwapEvent:
			logger.Debug("swap", "phase", phase, "from", e.From, "to", e.To)
		case puzzle.CancelEvent:
			logger.Debug("gesture cancelled", "phase", phase, "swaps", e.Swaps, "reverted", e.Reverted)
		case puzzle.CheckEvent:
			logger.Debug("detection pass", "phase", phase, "cascade", e.Cascade, "matched", e.Matched, "marked", len(e.Marked))
		case puzzle.EraseEvent:
			for _, c := range e.Combos {
				logger.Debug("combo erased", "phase", phase, "seq", c.Seq, "type", c.Type,
					"size", c.Size(), "col", c.Col, "row", c.Row)
			}
			logger.Debug("erase pass", "phase", phase, "combos", len(e.Combos), "total", e.Total)
		case puzzle.DropEvent:
			logger.Debug("gravity", "phase", phase, "falls", len(e.Report.Falls), "spawns", len(e.Report.Spawns))
		case puzzle.AttackEvent:
			logger.Info("attack", "phase", phase, "combos", e.Attack.Combos, "damage", e.Attack.Damage)
		case puzzle.TruncatedEvent:
			logger.Warn("cascade limit reached", "phase", phase, "cascades", e.Cascades)
		default:
			logger.Debug("event", "phase", phase)
		}
	})
}
