package collide

type entry struct {
	id, partner int
}

type pairKey struct {
	lo, hi int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// List is the FIFO of pending collisions for one step. Each entry names the
// particle which registered a collision and the partner it registered with.
//
// Collisions that are invalidated during the scan are not removed right away.
// They are queued with Remove and dropped by Finalize once the scan is over,
// so that the list never changes underneath an iteration.
type List struct {
	entries  []entry
	removals map[pairKey]int
	ids      []int
}

// NewList returns an empty collision list.
func NewList() *List {
	return &List{removals: map[pairKey]int{}}
}

// Push appends the pending collision between id and partner.
func (l *List) Push(id, partner int) {
	l.entries = append(l.entries, entry{id, partner})
}

// Remove queues the removal of the entry for the pair (a, b). The removal is
// applied by Finalize.
func (l *List) Remove(a, b int) {
	l.removals[newPairKey(a, b)]++
}

// Finalize applies all queued removals. Each queued removal drops the oldest
// remaining entry for its pair.
func (l *List) Finalize() {
	if len(l.removals) == 0 {
		return
	}

	kept := l.entries[:0]
	for _, e := range l.entries {
		key := newPairKey(e.id, e.partner)
		if l.removals[key] > 0 {
			l.removals[key]--
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept

	for key := range l.removals {
		delete(l.removals, key)
	}
}

// Len returns the number of entries in the list.
func (l *List) Len() int { return len(l.entries) }

// IDs returns the registering particle of each entry in FIFO order. The
// returned slice is reused by later calls.
func (l *List) IDs() []int {
	l.ids = l.ids[:0]
	for _, e := range l.entries {
		l.ids = append(l.ids, e.id)
	}
	return l.ids
}

// Clear empties the list and drops all queued removals.
func (l *List) Clear() {
	l.entries = l.entries[:0]
	for key := range l.removals {
		delete(l.removals, key)
	}
}
