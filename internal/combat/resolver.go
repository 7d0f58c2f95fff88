// Package combat resolves attacks between characters sharing a tile.
package combat

import (
	"math/rand/v2"
	"sort"

	"github.com/samdwyer/dungeonle/internal/entity"
)

// Damage dealt by one strike is drawn uniformly from [MinDamage, MinDamage+DamageSpread).
const (
	MinDamage    = 100
	DamageSpread = 1000
)

// Result contains the outcome of one strike.
type Result struct {
	Damage int             // Hearts actually removed
	Killed bool            // True if the target has no hearts left
	Drops  []entity.Sprite // Items left behind by a killed target
}

// Resolver rolls damage and applies it.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Roll returns the damage for one strike.
func (r *Resolver) Roll() int {
	return r.rng.IntN(DamageSpread) + MinDamage
}

// Strike rolls damage against target. When the target dies its inventory is
// expanded into item sprites at its position.
func (r *Resolver) Strike(target *entity.Sprite) Result {
	result := Result{Damage: target.TakeDamage(r.Roll())}
	if target.Hearts == 0 {
		result.Killed = true
		result.Drops = Drops(*target)
	}
	return result
}

// Drops returns one item sprite per unit held by s, placed at s's position.
// Symbols are sorted so the drop order is stable.
func Drops(s entity.Sprite) []entity.Sprite {
	symbols := make([]string, 0, len(s.Items))
	for emoji := range s.Items {
		symbols = append(symbols, emoji)
	}
	sort.Strings(symbols)

	drops := make([]entity.Sprite, 0, s.ItemCount())
	for _, emoji := range symbols {
		for c := 0; c < s.Items[emoji]; c++ {
			drops = append(drops, entity.Sprite{X: s.X, Y: s.Y, Emoji: emoji, Kind: entity.KindItem})
		}
	}
	return drops
}
