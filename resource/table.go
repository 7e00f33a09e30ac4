package resource

// Handle is an opaque generational reference to a table entry.
// The low 32 bits are the slot index, the high 32 bits the generation.
// Handle 0 is reserved and always invalid.
type Handle uint64

// Class distinguishes what kind of value a handle refers to.
type Class uint8

const (
	ClassInput Class = iota + 1
	ClassOutput
	ClassDiagnostic
)

func (c Class) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassOutput:
		return "output"
	case ClassDiagnostic:
		return "diagnostic"
	default:
		return "unknown"
	}
}

type entry struct {
	value any
	gen   uint32
	class Class
	live  bool
}

// Table maps handles to provider-owned values with class checking and
// use-after-close detection.
type Table struct {
	entries []entry
	free    []uint32
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{
		entries: make([]entry, 0, 16),
		free:    make([]uint32, 0, 8),
	}
}

// Insert stores a value and returns its handle.
func (t *Table) Insert(class Class, value any) Handle {
	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		e := &t.entries[idx]
		e.value = value
		e.class = class
		e.live = true
		// Generation was already bumped when the slot was vacated.
		return pack(idx, e.gen)
	}

	t.entries = append(t.entries, entry{
		value: value,
		gen:   1,
		class: class,
		live:  true,
	})
	return pack(uint32(len(t.entries)-1), 1)
}

// Get retrieves the value for a live handle of the given class.
func (t *Table) Get(h Handle, class Class) (any, bool) {
	e := t.lookup(h)
	if e == nil || e.class != class {
		return nil, false
	}
	return e.value, true
}

// Class reports the class of a live handle.
func (t *Table) Class(h Handle) (Class, bool) {
	e := t.lookup(h)
	if e == nil {
		return 0, false
	}
	return e.class, true
}

// Remove invalidates a handle and returns its value. Subsequent uses of
// the handle fail even after the slot is reused.
func (t *Table) Remove(h Handle, class Class) (any, bool) {
	e := t.lookup(h)
	if e == nil || e.class != class {
		return nil, false
	}

	value := e.value
	e.value = nil
	e.live = false
	e.gen++
	t.free = append(t.free, index(h))
	return value, true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	n := 0
	for i := range t.entries {
		if t.entries[i].live {
			n++
		}
	}
	return n
}

// Each iterates over all live entries.
func (t *Table) Each(fn func(Handle, Class, any) bool) {
	for i := range t.entries {
		e := &t.entries[i]
		if !e.live {
			continue
		}
		if !fn(pack(uint32(i), e.gen), e.class, e.value) {
			return
		}
	}
}

// Clear invalidates every live handle without touching the stored values.
// Cleanup of the underlying resources stays with their owner.
func (t *Table) Clear() {
	for i := range t.entries {
		e := &t.entries[i]
		if !e.live {
			continue
		}
		e.value = nil
		e.live = false
		e.gen++
		t.free = append(t.free, uint32(i))
	}
}

func (t *Table) lookup(h Handle) *entry {
	if h == 0 {
		return nil
	}
	idx := index(h)
	if int(idx) >= len(t.entries) {
		return nil
	}
	e := &t.entries[idx]
	if !e.live || e.gen != generation(h) {
		return nil
	}
	return e
}

func pack(idx, gen uint32) Handle {
	return Handle(gen)<<32 | Handle(idx)
}

func index(h Handle) uint32 {
	return uint32(h)
}

func generation(h Handle) uint32 {
	return uint32(h >> 32)
}
