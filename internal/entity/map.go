package entity

import "sort"

// Map holds every sprite in a session keyed by identity. Updates are made on
// a Clone so readers holding the previous Map never see a partial change.
type Map map[ID]Sprite

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, s := range m {
		out[id] = s.Clone()
	}
	return out
}

// IDs returns the identities in m in sorted order.
func (m Map) IDs() []ID {
	ids := make([]ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// At returns the sorted identities of sprites standing on (x, y).
func (m Map) At(x, y int) []ID {
	var ids []ID
	for _, id := range m.IDs() {
		if s := m[id]; s.X == x && s.Y == y {
			ids = append(ids, id)
		}
	}
	return ids
}

// CountKind returns how many sprites have kind k.
func (m Map) CountKind(k Kind) int {
	n := 0
	for _, s := range m {
		if s.Kind == k {
			n++
		}
	}
	return n
}
