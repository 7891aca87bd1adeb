package entity

// GridSize is the width and height of every player's board.
const GridSize = 6

// Coordinate addresses a single cell, x is the column and y the row.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Coordinate) InBounds() bool {
	return that.X >= 0 && that.X < GridSize && that.Y >= 0 && that.Y < GridSize
}

// ShipTemplate is a catalog entry a player turns into a placed Ship.
type ShipTemplate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}

// DefaultShips is the fleet catalog, placed strictly in this order.
var DefaultShips = []ShipTemplate{
	{ID: "battleship", Name: "Battleship", Size: 4},
	{ID: "destroyer", Name: "Destroyer", Size: 3},
	{ID: "submarine", Name: "Submarine", Size: 2},
	{ID: "patrol", Name: "Patrol", Size: 2},
}

type Ship struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Size        int          `json:"size"`
	Coordinates []Coordinate `json:"coordinates"`
	IsVertical  bool         `json:"is_vertical"`
	Hits        int          `json:"hits"`
}

func NewShip(template ShipTemplate, coordinates []Coordinate, vertical bool) *Ship {
	return &Ship{
		ID:          template.ID,
		Name:        template.Name,
		Size:        template.Size,
		Coordinates: coordinates,
		IsVertical:  vertical,
	}
}

func (that *Ship) IsSunk() bool {
	return that.Hits == that.Size
}

func (that *Ship) Occupies(c Coordinate) bool {
	for _, own := range that.Coordinates {
		if own == c {
			return true
		}
	}
	return false
}

func (that *Ship) clone() *Ship {
	cp := *that
	cp.Coordinates = append([]Coordinate(nil), that.Coordinates...)
	return &cp
}

// shipRun returns the size-long run of cells starting at origin.
func shipRun(origin Coordinate, size int, vertical bool) []Coordinate {
	run := make([]Coordinate, 0, size)
	for i := 0; i < size; i++ {
		if vertical {
			run = append(run, Coordinate{X: origin.X, Y: origin.Y + i})
		} else {
			run = append(run, Coordinate{X: origin.X + i, Y: origin.Y})
		}
	}
	return run
}
