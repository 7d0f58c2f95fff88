// Package entity provides sprites: the players, NPCs, items, chests and warps
// standing on the map.
package entity

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a sprite for the lifetime of a session.
type ID string

// NewID returns a fresh random identity.
func NewID() ID {
	return ID(uuid.NewString())
}

// Kind is the closed set of sprite variants.
type Kind string

const (
	KindPlayer Kind = "player"
	KindNPC    Kind = "npc"
	KindItem   Kind = "item"
	KindChest  Kind = "chest"
	KindWarp   Kind = "warp"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPlayer, KindNPC, KindItem, KindChest, KindWarp:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sprite kind %q", s)
	}
}

// IsCharacter reports whether sprites of this kind have hearts, an action and items.
func (k Kind) IsCharacter() bool {
	return k == KindPlayer || k == KindNPC
}

// Action is a character's pending intent. ActionNone means idle.
type Action string

const (
	ActionNone  Action = ""
	ActionTap   Action = "tap"
	ActionUp    Action = "up"
	ActionLeft  Action = "left"
	ActionDown  Action = "down"
	ActionRight Action = "right"
)

// ParseAction validates an intent name. "null" and "" both mean idle.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionTap, ActionUp, ActionLeft, ActionDown, ActionRight, ActionNone:
		return a, nil
	case "null":
		return ActionNone, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}

// Delta returns the movement offset for a directional action.
func (a Action) Delta() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, -1, true
	case ActionLeft:
		return -1, 0, true
	case ActionDown:
		return 0, 1, true
	case ActionRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// MarshalJSON encodes ActionNone as null.
func (a Action) MarshalJSON() ([]byte, error) {
	if a == ActionNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// Sprite is one game object on the map.
type Sprite struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Emoji string `json:"emoji"`
	Kind  Kind   `json:"kind"`

	// Characters only
	Hearts int            `json:"hearts"`
	Action Action         `json:"action"`
	Items  map[string]int `json:"items"`

	// Warps only: index into the row-major list of warp tiles.
	To int `json:"to"`
}

// spriteBase holds the fields every kind encodes.
type spriteBase struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Emoji string `json:"emoji"`
	Kind  Kind   `json:"kind"`
}

// MarshalJSON encodes only the fields that belong to the sprite's kind.
// Characters always carry hearts, a nullable action and an inventory
// (possibly empty); warps always carry to, even when it is 0.
func (s Sprite) MarshalJSON() ([]byte, error) {
	base := spriteBase{X: s.X, Y: s.Y, Emoji: s.Emoji, Kind: s.Kind}
	switch {
	case s.IsCharacter():
		items := s.Items
		if items == nil {
			items = map[string]int{}
		}
		return json.Marshal(struct {
			spriteBase
			Hearts int            `json:"hearts"`
			Action Action         `json:"action"`
			Items  map[string]int `json:"items"`
		}{base, s.Hearts, s.Action, items})
	case s.Kind == KindWarp:
		return json.Marshal(struct {
			spriteBase
			To int `json:"to"`
		}{base, s.To})
	default:
		return json.Marshal(base)
	}
}

// Position returns the sprite's current x, y coordinates.
func (s Sprite) Position() (int, int) {
	return s.X, s.Y
}

// IsCharacter reports whether the sprite is a player or NPC.
func (s Sprite) IsCharacter() bool {
	return s.Kind.IsCharacter()
}

// IsAlive returns true for characters with hearts left.
func (s Sprite) IsAlive() bool {
	return s.IsCharacter() && s.Hearts > 0
}

// TakeDamage reduces hearts and returns actual damage taken.
func (s *Sprite) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > s.Hearts {
		actual = s.Hearts
	}
	s.Hearts -= actual
	return actual
}

// AddItem merges n units of emoji into the inventory.
func (s *Sprite) AddItem(emoji string, n int) {
	if n <= 0 {
		return
	}
	if s.Items == nil {
		s.Items = make(map[string]int)
	}
	s.Items[emoji] += n
}

// ItemCount returns the total number of units held.
func (s Sprite) ItemCount() int {
	total := 0
	for _, n := range s.Items {
		total += n
	}
	return total
}

// Clone returns a copy that shares no inventory with s.
func (s Sprite) Clone() Sprite {
	if s.Items != nil {
		items := make(map[string]int, len(s.Items))
		for k, v := range s.Items {
			items[k] = v
		}
		s.Items = items
	}
	return s
}
