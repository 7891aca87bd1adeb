package entity

import (
	"fmt"

	"github.com/rocketscienceinc/eduwars-backend/internal/apperror"
)

// Mark is the shot outcome recorded on a board cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkHit   Mark = "hit"
	MarkMiss  Mark = "miss"
)

// Grid is indexed as Grid[y][x].
type Grid [GridSize][GridSize]Mark

type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Ships        []*Ship `json:"ships"`
	Grid         Grid    `json:"grid"`
	IsEliminated bool    `json:"is_eliminated"`
}

// ShotResult reports what a single shot did. SunkenShip is set only when the shot sank a ship.
type ShotResult struct {
	Hit        bool   `json:"hit"`
	SunkenShip string `json:"sunken_ship,omitempty"`
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Ships: make([]*Ship, 0, len(DefaultShips)),
	}
}

// ShipAt returns the ship covering c, or nil.
func (that *Player) ShipAt(c Coordinate) *Ship {
	for _, ship := range that.Ships {
		if ship.Occupies(c) {
			return ship
		}
	}
	return nil
}

func (that *Player) CanPlace(origin Coordinate, size int, vertical bool) bool {
	if size <= 0 {
		return false
	}

	for _, c := range shipRun(origin, size, vertical) {
		if !c.InBounds() || that.ShipAt(c) != nil {
			return false
		}
	}

	return true
}

// NextShipTemplate returns the catalog entry this player has to place next.
func (that *Player) NextShipTemplate() (ShipTemplate, bool) {
	if that.HasCompleteFleet() {
		return ShipTemplate{}, false
	}
	return DefaultShips[len(that.Ships)], true
}

func (that *Player) HasCompleteFleet() bool {
	return len(that.Ships) >= len(DefaultShips)
}

// PlaceShip appends a ship built from template. Templates are consumed in catalog order.
func (that *Player) PlaceShip(template ShipTemplate, origin Coordinate, vertical bool) (*Ship, error) {
	next, ok := that.NextShipTemplate()
	if !ok {
		return nil, fmt.Errorf("%w: fleet already complete", apperror.ErrIllegalPlacement)
	}

	if next != template {
		return nil, fmt.Errorf("%w: expected %s, got %s", apperror.ErrIllegalPlacement, next.ID, template.ID)
	}

	if !that.CanPlace(origin, template.Size, vertical) {
		return nil, fmt.Errorf("%w: %s at (%d,%d)", apperror.ErrIllegalPlacement, template.ID, origin.X, origin.Y)
	}

	ship := NewShip(template, shipRun(origin, template.Size, vertical), vertical)
	that.Ships = append(that.Ships, ship)

	return ship, nil
}

// RemoveShipAt drops the whole ship covering c. Reports whether a ship was removed.
func (that *Player) RemoveShipAt(c Coordinate) bool {
	for i, ship := range that.Ships {
		if ship.Occupies(c) {
			that.Ships = append(that.Ships[:i], that.Ships[i+1:]...)
			return true
		}
	}
	return false
}

func (that *Player) UndoLast() bool {
	if len(that.Ships) == 0 {
		return false
	}

	that.Ships[len(that.Ships)-1] = nil
	that.Ships = that.Ships[:len(that.Ships)-1]

	return true
}

func (that *Player) ResetAll() {
	that.Ships = make([]*Ship, 0, len(DefaultShips))
}

// AllShipsSunk is false for an empty fleet, a player without ships has nothing to lose yet.
func (that *Player) AllShipsSunk() bool {
	if len(that.Ships) == 0 {
		return false
	}

	for _, ship := range that.Ships {
		if !ship.IsSunk() {
			return false
		}
	}

	return true
}

func (that *Player) MarkAt(c Coordinate) Mark {
	return that.Grid[c.Y][c.X]
}

// ResolveShot is the only place grid cells and ship hits change.
func (that *Player) ResolveShot(c Coordinate) (ShotResult, error) {
	if !c.InBounds() {
		return ShotResult{}, fmt.Errorf("%w: (%d,%d) is off the grid", apperror.ErrIllegalShot, c.X, c.Y)
	}

	if that.MarkAt(c) != MarkEmpty {
		return ShotResult{}, fmt.Errorf("%w: (%d,%d) already marked", apperror.ErrIllegalShot, c.X, c.Y)
	}

	ship := that.ShipAt(c)
	if ship == nil {
		that.Grid[c.Y][c.X] = MarkMiss
		return ShotResult{Hit: false}, nil
	}

	that.Grid[c.Y][c.X] = MarkHit
	ship.Hits++
	that.IsEliminated = that.AllShipsSunk()

	result := ShotResult{Hit: true}
	if ship.IsSunk() {
		result.SunkenShip = ship.Name
	}

	return result, nil
}

// Clone returns a deep copy that shares nothing with the receiver.
func (that *Player) Clone() *Player {
	cp := *that
	cp.Ships = make([]*Ship, 0, len(that.Ships))
	for _, ship := range that.Ships {
		cp.Ships = append(cp.Ships, ship.clone())
	}
	return &cp
}
