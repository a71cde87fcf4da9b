package huffcodec

// FrequencyMap counts occurrences of each Symbol.  It also remembers the order
// in which distinct symbols were first added, which BuildTree uses to break
// ties deterministically.
//
// The zero value is an empty map, ready to use.
type FrequencyMap struct {
	counts map[Symbol]uint64
	order  []Symbol
	total  uint64
}

// Count computes the frequency of each Symbol in input.
func Count(input []Symbol) FrequencyMap {
	var fm FrequencyMap
	for _, sym := range input {
		fm.Add(sym, 1)
	}
	return fm
}

// Add records n more occurrences of sym.  Counts saturate rather than wrap.
func (fm *FrequencyMap) Add(sym Symbol, n uint64) {
	if fm.counts == nil {
		fm.counts = make(map[Symbol]uint64)
	}
	old, found := fm.counts[sym]
	if !found {
		fm.order = append(fm.order, sym)
	}
	fm.counts[sym] = saturatingAdd(old, n)
	fm.total = saturatingAdd(fm.total, n)
}

// Len returns the number of distinct symbols.
func (fm FrequencyMap) Len() int {
	return len(fm.order)
}

// Total returns the sum of all counts.
func (fm FrequencyMap) Total() uint64 {
	return fm.total
}

// Freq returns the count for sym, or 0 if sym was never added.
func (fm FrequencyMap) Freq(sym Symbol) uint64 {
	return fm.counts[sym]
}

// Symbols returns the distinct symbols in first-seen order.
func (fm FrequencyMap) Symbols() []Symbol {
	out := make([]Symbol, len(fm.order))
	copy(out, fm.order)
	return out
}
