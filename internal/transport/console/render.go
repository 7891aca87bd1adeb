package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/eduwars-backend/internal/engine"
	"github.com/rocketscienceinc/eduwars-backend/internal/entity"
)

const (
	cellWater     = '~'
	cellShip      = '#'
	cellHit       = 'X'
	cellMiss      = 'o'
	cellConcealed = '?'
)

func (that *Server) render(snap engine.Snapshot) error {
	if _, err := fmt.Fprint(that.out, renderSnapshot(snap, that.flipped)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// renderSnapshot draws the state line, the instructions for whoever holds the device and every board.
func renderSnapshot(snap engine.Snapshot, flipped bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n== %s ==\n", snap.State)

	switch snap.State {
	case engine.StateLobby:
		b.WriteString("Type start 2 or start 3 [names...] to open a campaign.\n")
	case engine.StateSetup:
		renderSetup(&b, snap)
	case engine.StatePassDevice:
		fmt.Fprintf(&b, "%s\nType pass when the device has changed hands.\n", snap.Prompt)
	case engine.StateQuestion:
		renderQuestion(&b, snap, flipped)
	case engine.StateAction:
		fmt.Fprintf(&b, "%s, fire at %s: shoot <x> <y>\n", playerName(snap, snap.ActivePlayerIndex), targetName(snap))
	case engine.StateResult:
		renderResult(&b, snap)
	case engine.StateGameOver:
		renderGameOver(&b, snap)
	}

	// Ships are drawn during setup and once the war is over; battle boards show marks only.
	showShips := snap.State == engine.StateSetup || snap.State == engine.StateGameOver

	for _, view := range snap.Players {
		renderBoard(&b, view, showShips)
	}

	return b.String()
}

func renderSetup(b *strings.Builder, snap engine.Snapshot) {
	name := playerName(snap, snap.ActivePlayerIndex)

	if snap.NextShip == nil {
		fmt.Fprintf(b, "%s, your fleet is complete. Type confirm to lock it in.\n", name)
		return
	}

	fmt.Fprintf(b, "%s, place your %s (size %d): place <x> <y> [h|v]\n", name, snap.NextShip.Name, snap.NextShip.Size)
}

func renderQuestion(b *strings.Builder, snap engine.Snapshot, flipped bool) {
	fmt.Fprintf(b, "%s, translate into German.\n", playerName(snap, snap.ActivePlayerIndex))

	if question := snap.CurrentQuestion; question != nil {
		fmt.Fprintf(b, "[%s] %s\n", question.Category, question.English)
		if flipped {
			fmt.Fprintf(b, "Answer: %s\n", question.German)
		}
	}

	b.WriteString("Type flip to see the answer, then correct or wrong.\n")
}

func renderResult(b *strings.Builder, snap engine.Snapshot) {
	shot := snap.LastShotResult
	if shot == nil {
		b.WriteString("FAILED: no shot authorized.\nType next to pass to the next admiral.\n")
		return
	}

	renderShot(b, shot)

	if shot.Hit {
		b.WriteString("Type reload for another question.\n")
		return
	}

	b.WriteString("Type next to pass to the next admiral.\n")
}

func renderGameOver(b *strings.Builder, snap engine.Snapshot) {
	if snap.LastShotResult != nil {
		renderShot(b, snap.LastShotResult)
	}

	if winner, ok := snap.Winner(); ok {
		fmt.Fprintf(b, "%s wins the campaign!\n", winner.Player.Name)
	}

	b.WriteString("Type restart for a new campaign.\n")
}

func renderShot(b *strings.Builder, shot *entity.ShotResult) {
	if !shot.Hit {
		b.WriteString("MISS.\n")
		return
	}

	b.WriteString("HIT!\n")
	if shot.SunkenShip != "" {
		fmt.Fprintf(b, "%s sunk!\n", shot.SunkenShip)
	}
}

func renderBoard(b *strings.Builder, view engine.PlayerView, showShips bool) {
	player := view.Player

	if view.Concealed {
		fmt.Fprintf(b, "\n%s [%s] hidden\n", player.Name, player.ID)
	} else {
		fmt.Fprintf(b, "\n%s [%s] afloat %d/%d", player.Name, player.ID, afloat(player), len(player.Ships))
		if player.IsEliminated {
			b.WriteString(" eliminated")
		}
		b.WriteString("\n")
	}

	b.WriteString("   ")
	for x := 0; x < entity.GridSize; x++ {
		fmt.Fprintf(b, " %d", x)
	}
	b.WriteString("\n")

	for y := 0; y < entity.GridSize; y++ {
		fmt.Fprintf(b, " %d ", y)
		for x := 0; x < entity.GridSize; x++ {
			fmt.Fprintf(b, " %c", cell(player, entity.Coordinate{X: x, Y: y}, view.Concealed, showShips))
		}
		b.WriteString("\n")
	}
}

func cell(player *entity.Player, c entity.Coordinate, concealed, showShips bool) rune {
	if concealed {
		return cellConcealed
	}

	switch player.MarkAt(c) {
	case entity.MarkHit:
		return cellHit
	case entity.MarkMiss:
		return cellMiss
	}

	if showShips && player.ShipAt(c) != nil {
		return cellShip
	}

	return cellWater
}

func afloat(player *entity.Player) int {
	count := 0
	for _, ship := range player.Ships {
		if !ship.IsSunk() {
			count++
		}
	}
	return count
}

func playerName(snap engine.Snapshot, index int) string {
	if index < 0 || index >= len(snap.Players) {
		return ""
	}
	return snap.Players[index].Player.Name
}

func targetName(snap engine.Snapshot) string {
	if snap.TargetPlayerIndex == nil {
		return ""
	}
	return playerName(snap, *snap.TargetPlayerIndex)
}
