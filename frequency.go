package huffman

import (
	"sort"
)

// FrequencyTable maps each distinct Symbol to its number of occurrences.
// Symbols that do not occur have no entry.
type FrequencyTable map[Symbol]uint64

// CountFrequencies tallies the occurrences of each Symbol in symbols.
func CountFrequencies(symbols []Symbol) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, symbol := range symbols {
		freqs[symbol]++
	}
	return freqs
}

// Symbols returns the distinct Symbols of the table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(freqs))
	for symbol := range freqs {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
