package domain

// HubID is the position every trip starts and ends at.
const HubID = "CENTRO"

// Position is a named destination with its one-way travel time from the hub.
type Position struct {
	ID            string
	OneWayMinutes float64
	Line          Line
}

// Return the hub -> position -> hub time, as dispatchers quote it.
func (p Position) RoundTripMinutes() float64 { return p.OneWayMinutes * 2 }

// PositionTable is an immutable lookup of positions by identifier.
// Declaration order is kept for listing.
type PositionTable struct {
	order []string
	byID  map[string]Position
}

func NewPositionTable(positions ...Position) PositionTable {
	t := PositionTable{
		order: make([]string, 0, len(positions)),
		byID:  make(map[string]Position, len(positions)),
	}
	for _, p := range positions {
		if _, ok := t.byID[p.ID]; !ok {
			t.order = append(t.order, p.ID)
		}
		t.byID[p.ID] = p
	}
	return t
}

// Lookup returns the position for id, or an *UnknownStopError.
func (t PositionTable) Lookup(id string) (Position, error) {
	p, ok := t.byID[id]
	if !ok {
		return Position{}, &UnknownStopError{ID: id}
	}
	return p, nil
}

func (t PositionTable) Contains(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// Positions returns a copy of the table in declaration order.
func (t PositionTable) Positions() []Position {
	out := make([]Position, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

func (t PositionTable) Len() int { return len(t.order) }

// Montesa is the compiled-in table for the CT Montesa dispatch desk.
// One-way times are half of the quoted round trips.
var Montesa = NewPositionTable(
	Position{ID: HubID, OneWayMinutes: 0, Line: LineCenter},
	Position{ID: "K48.11", OneWayMinutes: 30, Line: LineEast},
	Position{ID: "K48.12", OneWayMinutes: 20, Line: LineEast},
	Position{ID: "15.20A", OneWayMinutes: 30, Line: LineSouth},
	Position{ID: "15.20.1", OneWayMinutes: 30, Line: LineWest},
	Position{ID: "15.20.2", OneWayMinutes: 40, Line: LineWest},
	Position{ID: "15.20.3", OneWayMinutes: 60, Line: LineWest},
	Position{ID: "15.20.4", OneWayMinutes: 70, Line: LineWest},
)
