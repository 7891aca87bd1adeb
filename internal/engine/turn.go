package engine

import (
	"fmt"

	"github.com/rocketscienceinc/eduwars-backend/internal/apperror"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

// startTurn hands the turn to the first live player at or after index and draws a card.
// With one or no live players left the game is already decided.
func (that *Engine) startTurn(index int) {
	if that.liveCount() <= 1 {
		that.finish()
		return
	}

	that.active = that.nextLive(index % len(that.players))

	question := that.pool.Draw()
	that.question = &question
	that.target = noPlayer
	that.state = StateQuestion
}

func (that *Engine) AnswerCorrect() error {
	if err := that.allow(OpAnswerCorrect); err != nil {
		return err
	}

	that.target = that.nextLive((that.active + 1) % len(that.players))
	that.state = StateAction

	return nil
}

// AnswerWrong skips the strike: the result screen shows no shot.
func (that *Engine) AnswerWrong() error {
	if err := that.allow(OpAnswerWrong); err != nil {
		return err
	}

	that.lastShot = nil
	that.state = StateResult

	return nil
}

// Shoot fires at the designated target. A shot that leaves a single fleet afloat ends the game
// immediately instead of showing the result screen.
func (that *Engine) Shoot(targetIndex int, c entity.Coordinate) (entity.ShotResult, error) {
	if err := that.allow(OpShoot); err != nil {
		return entity.ShotResult{}, err
	}

	if that.target == noPlayer {
		return entity.ShotResult{}, fmt.Errorf("%w: no target designated", apperror.ErrIllegalShot)
	}

	if targetIndex != that.target {
		return entity.ShotResult{}, fmt.Errorf("%w: target is player %d, not %d", apperror.ErrIllegalShot, that.target, targetIndex)
	}

	result, err := that.players[that.target].ResolveShot(c)
	if err != nil {
		return entity.ShotResult{}, err
	}

	that.lastShot = &result

	if that.liveCount() == 1 {
		that.finish()
		return result, nil
	}

	that.state = StateResult

	return result, nil
}

// ContinueAfterResult keeps the turn after a hit (reload) or passes it on after a miss
// or a wrong answer (next admiral). The other choice is rejected.
func (that *Engine) ContinueAfterResult(choice Choice) error {
	if err := that.allow(OpContinueAfterResult); err != nil {
		return err
	}

	hit := that.lastShot != nil && that.lastShot.Hit

	switch {
	case choice == ChoiceReload && hit:
		that.startTurn(that.active)
	case choice == ChoiceNextAdmiral && !hit:
		that.startTurn((that.active + 1) % len(that.players))
	default:
		return fmt.Errorf("%w: %q not offered after this result", apperror.ErrInvalidTransition, choice)
	}

	return nil
}

func (that *Engine) finish() {
	that.state = StateGameOver
	that.target = noPlayer
	that.winner = noPlayer

	for i, player := range that.players {
		if !player.IsEliminated {
			that.winner = i
			break
		}
	}
}

func (that *Engine) liveCount() int {
	count := 0
	for _, player := range that.players {
		if !player.IsEliminated {
			count++
		}
	}
	return count
}

// nextLive walks forward from index (inclusive) in seat order to the first live player.
// Callers guarantee at least one live player exists.
func (that *Engine) nextLive(index int) int {
	n := len(that.players)
	for step := 0; step < n; step++ {
		candidate := (index + step) % n
		if !that.players[candidate].IsEliminated {
			return candidate
		}
	}
	return index
}
