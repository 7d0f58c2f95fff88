// Package game ties the map, the sprites and the combat rules into a world
// that advances one pass at a time, plus the terminal loop that drives it.
package game

import "github.com/samdwyer/dungeonle/internal/entity"

// EventType names what happened during a pass.
type EventType int

const (
	// EventMove is a character stepping onto a neighbouring tile.
	EventMove EventType = iota
	// EventBlocked is a move refused by a wall or the map edge.
	EventBlocked
	// EventPickup is a character collecting an item.
	EventPickup
	// EventOpenChest is a character tapping a chest open.
	EventOpenChest
	// EventAttack is one strike landing on a character.
	EventAttack
	// EventKill is a character dropping to zero hearts.
	EventKill
	// EventWarp is a character teleporting between warps.
	EventWarp
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventBlocked:
		return "blocked"
	case EventPickup:
		return "pickup"
	case EventOpenChest:
		return "open_chest"
	case EventAttack:
		return "attack"
	case EventKill:
		return "kill"
	case EventWarp:
		return "warp"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type by name.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event describes one interaction. Object is empty for moves.
type Event struct {
	Type    EventType `json:"type"`
	Subject entity.ID `json:"subject"`
	Object  entity.ID `json:"object,omitempty"`
	Emoji   string    `json:"emoji,omitempty"`
	Amount  int       `json:"amount,omitempty"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
}

// Notifier receives events as a pass resolves. Results never depend on it.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) {
	f(e)
}

type discard struct{}

func (discard) Notify(Event) {}
