package engine

import (
	"testing"

	"github.com/rocketscienceinc/eduwars-backend/internal/apperror"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
	"github.com/rocketscienceinc/eduwars-backend/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_AnswerCorrect(t *testing.T) {
	t.Run("Targets the next seat in a two player game", func(t *testing.T) {
		// Given: Alice is being quizzed
		game := startBattle(t, 2)

		// When: she answers correctly
		require.NoError(t, game.AnswerCorrect())

		// Then: Bob is the target
		snap := game.Snapshot()
		assert.Equal(t, StateAction, snap.State)
		require.NotNil(t, snap.TargetPlayerIndex)
		assert.Equal(t, 1, *snap.TargetPlayerIndex)
	})

	t.Run("Skips an eliminated player", func(t *testing.T) {
		// Given: three players with Bob already eliminated
		game := startBattle(t, 3)
		eliminate(t, game.players[1])

		// When: Alice answers correctly
		require.NoError(t, game.AnswerCorrect())

		// Then: Cleo is the target, never Bob and never Alice herself
		snap := game.Snapshot()
		require.NotNil(t, snap.TargetPlayerIndex)
		assert.Equal(t, 2, *snap.TargetPlayerIndex)
	})
}

func TestEngine_AnswerWrong(t *testing.T) {
	// Given: Alice is being quizzed
	game := startBattle(t, 2)

	// When: she answers wrongly
	require.NoError(t, game.AnswerWrong())

	// Then: the result screen shows no shot and no target
	snap := game.Snapshot()
	assert.Equal(t, StateResult, snap.State)
	assert.Nil(t, snap.LastShotResult)
	assert.Nil(t, snap.TargetPlayerIndex)

	// And: reloading is not offered
	require.ErrorIs(t, game.ContinueAfterResult(ChoiceReload), apperror.ErrInvalidTransition)
	assert.Equal(t, StateResult, game.State())

	// When: passing to the next admiral
	require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))

	// Then: Bob is quizzed
	snap = game.Snapshot()
	assert.Equal(t, StateQuestion, snap.State)
	assert.Equal(t, 1, snap.ActivePlayerIndex)
}

func TestEngine_Shoot(t *testing.T) {
	t.Run("Miss leads to the result screen and hands the turn on", func(t *testing.T) {
		// Given: Alice may strike Bob
		game := startBattle(t, 2)
		require.NoError(t, game.AnswerCorrect())

		// When: she fires at open water
		result, err := game.Shoot(1, water)
		require.NoError(t, err)

		// Then: a miss is recorded on Bob's board
		assert.Equal(t, entity.ShotResult{Hit: false}, result)
		snap := game.Snapshot()
		assert.Equal(t, StateResult, snap.State)
		require.NotNil(t, snap.LastShotResult)
		assert.False(t, snap.LastShotResult.Hit)
		assert.Equal(t, entity.MarkMiss, snap.Players[1].Player.Grid[water.Y][water.X])

		// And: only next admiral is offered
		require.ErrorIs(t, game.ContinueAfterResult(ChoiceReload), apperror.ErrInvalidTransition)
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))
		assert.Equal(t, 1, game.Snapshot().ActivePlayerIndex)
	})

	t.Run("Hit grants another question to the same player", func(t *testing.T) {
		// Given: Alice may strike Bob
		game := startBattle(t, 2)
		require.NoError(t, game.AnswerCorrect())
		firstQuestion := game.Snapshot().CurrentQuestion

		// When: she hits the battleship
		result, err := game.Shoot(1, entity.Coordinate{X: 2, Y: 0})
		require.NoError(t, err)
		assert.Equal(t, entity.ShotResult{Hit: true}, result)

		// Then: next admiral is not offered, reload is
		require.ErrorIs(t, game.ContinueAfterResult(ChoiceNextAdmiral), apperror.ErrInvalidTransition)
		require.NoError(t, game.ContinueAfterResult(ChoiceReload))

		snap := game.Snapshot()
		assert.Equal(t, StateQuestion, snap.State)
		assert.Equal(t, 0, snap.ActivePlayerIndex)
		assert.Nil(t, snap.TargetPlayerIndex)
		require.NotNil(t, snap.CurrentQuestion)
		assert.NotEqual(t, firstQuestion.ID, snap.CurrentQuestion.ID)
	})

	t.Run("Rejects a shot at a seat that is not the target", func(t *testing.T) {
		game := startBattle(t, 3)
		require.NoError(t, game.AnswerCorrect())
		before := game.Snapshot()

		_, err := game.Shoot(2, water)
		require.ErrorIs(t, err, apperror.ErrIllegalShot)
		_, err = game.Shoot(0, water)
		require.ErrorIs(t, err, apperror.ErrIllegalShot)

		assert.Equal(t, before, game.Snapshot())
	})

	t.Run("Rejects a second miss on the same cell", func(t *testing.T) {
		// Given: Alice missed Bob at (5,5), then Bob answered wrongly
		game := startBattle(t, 2)
		require.NoError(t, game.AnswerCorrect())
		_, err := game.Shoot(1, water)
		require.NoError(t, err)
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))
		require.NoError(t, game.AnswerWrong())
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))
		require.NoError(t, game.AnswerCorrect())
		before := game.Snapshot()

		// When: Alice fires at (5,5) again
		result, err := game.Shoot(1, water)

		// Then: no new result and the strike is still pending
		require.ErrorIs(t, err, apperror.ErrIllegalShot)
		assert.Equal(t, entity.ShotResult{}, result)
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, StateAction, game.State())
	})

	t.Run("Sinking the last ship ends the game at once", func(t *testing.T) {
		// Given: Bob has a single unhit cell left
		game := startBattle(t, 2)
		last := sinkAllButLast(t, game.players[1])
		require.NoError(t, game.AnswerCorrect())

		// When: Alice hits it
		result, err := game.Shoot(1, last)
		require.NoError(t, err)

		// Then: the patrol boat sinks, Bob is out and Alice wins without a result screen
		assert.Equal(t, entity.ShotResult{Hit: true, SunkenShip: "Patrol"}, result)
		snap := game.Snapshot()
		assert.Equal(t, StateGameOver, snap.State)
		assert.True(t, snap.Players[1].Player.IsEliminated)
		require.NotNil(t, snap.LastShotResult)
		assert.Equal(t, "Patrol", snap.LastShotResult.SunkenShip)

		winner, ok := snap.Winner()
		require.True(t, ok)
		assert.Equal(t, "Alice", winner.Player.Name)
	})

	t.Run("Eliminating one of three players keeps the game going", func(t *testing.T) {
		// Given: Bob has a single unhit cell left in a three player game
		game := startBattle(t, 3)
		last := sinkAllButLast(t, game.players[1])
		require.NoError(t, game.AnswerCorrect())

		// When: Alice sinks Bob's last ship
		_, err := game.Shoot(1, last)
		require.NoError(t, err)

		// Then: the result screen shows and Alice may reload
		snap := game.Snapshot()
		assert.Equal(t, StateResult, snap.State)
		assert.True(t, snap.Players[1].Player.IsEliminated)
		_, ok := snap.Winner()
		assert.False(t, ok)

		require.NoError(t, game.ContinueAfterResult(ChoiceReload))
		require.NoError(t, game.AnswerCorrect())
		require.NotNil(t, game.Snapshot().TargetPlayerIndex)
		assert.Equal(t, 2, *game.Snapshot().TargetPlayerIndex)
	})
}

func TestEngine_StartTurn(t *testing.T) {
	t.Run("Skips eliminated seats when handing the turn on", func(t *testing.T) {
		// Given: three players, Bob eliminated, Alice on the result screen after a wrong answer
		game := startBattle(t, 3)
		eliminate(t, game.players[1])
		require.NoError(t, game.AnswerWrong())

		// When: passing to the next admiral
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))

		// Then: Cleo plays, and her target wraps around to Alice
		assert.Equal(t, 2, game.Snapshot().ActivePlayerIndex)
		require.NoError(t, game.AnswerCorrect())
		assert.Equal(t, 0, *game.Snapshot().TargetPlayerIndex)

		// And: after Cleo misses the turn wraps back to Alice
		_, err := game.Shoot(0, water)
		require.NoError(t, err)
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))
		assert.Equal(t, 0, game.Snapshot().ActivePlayerIndex)
	})

	t.Run("Forces game over when the handoff finds one fleet left", func(t *testing.T) {
		// Given: Alice on the result screen while Bob's fleet was sunk out of band
		game := startBattle(t, 2)
		require.NoError(t, game.AnswerWrong())
		eliminate(t, game.players[1])

		// When: the turn is handed on
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))

		// Then: the game is over and Alice wins
		snap := game.Snapshot()
		assert.Equal(t, StateGameOver, snap.State)
		require.NotNil(t, snap.WinnerIndex)
		assert.Equal(t, 0, *snap.WinnerIndex)
	})

	t.Run("Does not end the game while two fleets float", func(t *testing.T) {
		game := startBattle(t, 3)
		eliminate(t, game.players[2])
		require.NoError(t, game.AnswerWrong())

		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))

		assert.Equal(t, StateQuestion, game.State())
		assert.Equal(t, 1, game.Snapshot().ActivePlayerIndex)
	})

	t.Run("Reshuffles when the pool runs dry", func(t *testing.T) {
		// Given: an empty pool mid-battle
		game := startBattle(t, 2)
		game.pool.Clear()
		require.NoError(t, game.AnswerWrong())

		// When: the next turn draws a card
		require.NoError(t, game.ContinueAfterResult(ChoiceNextAdmiral))

		// Then: a full deck minus the drawn card is back
		snap := game.Snapshot()
		require.NotNil(t, snap.CurrentQuestion)
		assert.Equal(t, quiz.DefaultCatalog().Len()-1, snap.PoolRemaining)
	})
}

func TestEngine_RestartCampaign(t *testing.T) {
	// Given: a finished game
	game := startBattle(t, 2)
	last := sinkAllButLast(t, game.players[1])
	require.NoError(t, game.AnswerCorrect())
	_, err := game.Shoot(1, last)
	require.NoError(t, err)
	require.Equal(t, StateGameOver, game.State())

	// When: restarting
	require.NoError(t, game.RestartCampaign())

	// Then: everything is cleared and a new lobby is open
	snap := game.Snapshot()
	assert.Equal(t, StateLobby, snap.State)
	assert.Empty(t, snap.Players)
	assert.Nil(t, snap.WinnerIndex)
	assert.Nil(t, snap.LastShotResult)
	assert.Nil(t, snap.CurrentQuestion)
	assert.Equal(t, 0, snap.PoolRemaining)
	require.NoError(t, game.InitGame(3, nil))
}
