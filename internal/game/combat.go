package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonle/internal/entity"
	"github.com/samdwyer/dungeonle/internal/telemetry"
)

// Step resolves one pass: pending moves, then collisions between sprites
// sharing a tile, then every action is cleared. The previous sprite map is
// left untouched and the new one is returned.
func (w *World) Step(ctx context.Context) entity.Map {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.step")
	defer span.End()

	counts := make(map[EventType]int)
	emit := func(e Event) {
		counts[e.Type]++
		w.notifier.Notify(e)
	}

	next := w.sprites.Clone()
	w.move(next, emit)
	w.collide(next, emit)
	for id, s := range next {
		if s.Action != entity.ActionNone {
			s.Action = entity.ActionNone
			next[id] = s
		}
	}

	w.sprites = next
	w.turn++

	span.SetAttributes(
		attribute.Int("turn", w.turn),
		attribute.Int("sprites", len(next)),
		attribute.Int("attacks", counts[EventAttack]),
		attribute.Int("kills", counts[EventKill]),
		attribute.Int("pickups", counts[EventPickup]+counts[EventOpenChest]),
	)
	return next
}

// move steps every character with a directional action one tile, unless the
// target is a wall or off the map.
func (w *World) move(m entity.Map, emit func(Event)) {
	for _, id := range m.IDs() {
		s := m[id]
		if !s.IsCharacter() {
			continue
		}
		dx, dy, ok := s.Action.Delta()
		if !ok {
			continue
		}
		s.Action = entity.ActionNone
		nx, ny := s.X+dx, s.Y+dy
		if w.grid.IsPassable(nx, ny) {
			s.X, s.Y = nx, ny
			emit(Event{Type: EventMove, Subject: id, X: nx, Y: ny})
		} else {
			emit(Event{Type: EventBlocked, Subject: id, X: nx, Y: ny})
		}
		m[id] = s
	}
}

// collide resolves every character against the other sprites on its tile.
// Items are picked up on contact. A tap is spent on the first chest,
// character or warp found, in sorted-id order.
func (w *World) collide(m entity.Map, emit func(Event)) {
	for _, id := range m.IDs() {
		subject, ok := m[id]
		if !ok || !subject.IsCharacter() {
			continue
		}

	objects:
		for _, oid := range m.At(subject.X, subject.Y) {
			object, ok := m[oid]
			if oid == id || !ok {
				continue
			}

			switch {
			case object.Kind == entity.KindItem:
				subject.AddItem(object.Emoji, 1)
				delete(m, oid)
				emit(Event{Type: EventPickup, Subject: id, Object: oid, Emoji: object.Emoji, Amount: 1, X: subject.X, Y: subject.Y})

			case subject.Action != entity.ActionTap:
				continue

			case object.Kind == entity.KindChest:
				subject.AddItem(object.Emoji, 1)
				delete(m, oid)
				emit(Event{Type: EventOpenChest, Subject: id, Object: oid, Emoji: object.Emoji, Amount: 1, X: subject.X, Y: subject.Y})
				subject.Action = entity.ActionNone

			case object.IsCharacter():
				w.attack(m, id, oid, object, emit)
				subject.Action = entity.ActionNone

			case object.Kind == entity.KindWarp:
				if len(w.warps) == 0 {
					continue
				}
				dest := w.warps[object.To%len(w.warps)]
				subject.X, subject.Y = dest.X, dest.Y
				emit(Event{Type: EventWarp, Subject: id, Object: oid, Emoji: object.Emoji, X: dest.X, Y: dest.Y})
				subject.Action = entity.ActionNone
				break objects
			}
		}
		m[id] = subject
	}
}

// attack strikes object once. A killed object is replaced by its inventory,
// one item sprite per unit, in the same update.
func (w *World) attack(m entity.Map, id, oid entity.ID, object entity.Sprite, emit func(Event)) {
	result := w.resolver.Strike(&object)
	emit(Event{Type: EventAttack, Subject: id, Object: oid, Emoji: object.Emoji, Amount: result.Damage, X: object.X, Y: object.Y})
	if !result.Killed {
		m[oid] = object
		return
	}

	delete(m, oid)
	for _, drop := range result.Drops {
		m[entity.NewID()] = drop
	}
	emit(Event{Type: EventKill, Subject: id, Object: oid, Emoji: object.Emoji, Amount: len(result.Drops), X: object.X, Y: object.Y})
}
