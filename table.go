package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Table maps Symbols to Codes and back.  The two directions always hold the
// same entries, and no Code in a Table is a prefix of another.
//
// A Table is read-only once constructed.
type Table struct {
	codes   map[Symbol]Code
	symbols map[Code]Symbol
	minSize byte
	maxSize byte
}

// DeriveTable walks the code tree rooted at root and assigns each leaf the
// Code spelled by its path: "0" for each step to a left child, "1" for each
// step to a right child.  A tree consisting of a single leaf assigns that
// leaf the one-bit code "0".
func DeriveTable(root *Node) (*Table, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty code tree", ErrInvalidInput)
	}

	t := newTable(0)

	if root.IsLeaf() {
		if root.Symbol < 0 {
			return nil, fmt.Errorf("%w: invalid symbol %d", ErrInvalidInput, root.Symbol)
		}
		t.add(root.Symbol, MakeCode(1, 0))
		return t, nil
	}

	// Walk the tree with an explicit stack.  Only internal nodes are
	// pushed; stackItem.code is the path to the node.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	var stack []stackItem
	var walkErr error

	processChild := func(child *Node, code Code) {
		if child == nil {
			walkErr = fmt.Errorf("%w: internal node at %s has only one child", ErrInvalidInput, code)
			return
		}
		if !child.IsLeaf() {
			if code.Size >= MaxCodeSize {
				walkErr = fmt.Errorf("%w: code tree is deeper than %d bits", ErrInvalidInput, MaxCodeSize)
				return
			}
			stack = append(stack, stackItem{node: child, code: code})
			return
		}
		if child.Symbol < 0 {
			walkErr = fmt.Errorf("%w: invalid symbol %d at %s", ErrInvalidInput, child.Symbol, code)
			return
		}
		if _, found := t.codes[child.Symbol]; found {
			walkErr = fmt.Errorf("%w: symbol %d appears in more than one leaf", ErrInvalidInput, child.Symbol)
			return
		}
		t.add(child.Symbol, code)
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 && walkErr == nil {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(false))
		case 1:
			processChild(top.node.Right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	if walkErr != nil {
		return nil, walkErr
	}
	return t, nil
}

// NewCanonicalTable constructs the canonical Huffman code for the given code
// lengths, per the algorithm in RFC 1951 Section 3.2.2: shorter codes sort
// before longer ones, and codes of equal length are assigned consecutively
// in ascending Symbol order.
//
// Lengths that over-subscribe or under-fill the code space are rejected
// with ErrMalformedContainer, except that a single Symbol with a length of 1
// is permitted, as there is no way to construct a complete code for it.
func NewCanonicalTable(sizes map[Symbol]byte) (*Table, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no code lengths", ErrMalformedContainer)
	}

	var countArray [MaxCodeSize + 1]uint64
	sorted := make(bySize, 0, len(sizes))
	for symbol, size := range sizes {
		if symbol < 0 {
			return nil, fmt.Errorf("%w: invalid symbol %d", ErrMalformedContainer, symbol)
		}
		if size == 0 || size > MaxCodeSize {
			return nil, fmt.Errorf("%w: invalid bit length %d for symbol %d", ErrMalformedContainer, size, symbol)
		}
		countArray[size]++
		sorted = append(sorted, symbolAndSize{symbol, size})
	}
	sorted.Sort()

	if len(sorted) == 1 {
		if sorted[0].size != 1 {
			return nil, fmt.Errorf("%w: lone symbol must have a bit length of 1, got %d", ErrMalformedContainer, sorted[0].size)
		}
	} else {
		// available is the number of unused codes at the current depth.
		// Once it exceeds the number of symbols still to be placed, the
		// code can no longer be completed.
		available := uint64(1)
		remaining := uint64(len(sorted))
		maxSize := sorted[len(sorted)-1].size
		for size := byte(1); size <= maxSize; size++ {
			available <<= 1
			if countArray[size] > available {
				return nil, fmt.Errorf("%w: over-subscribed code lengths", ErrMalformedContainer)
			}
			available -= countArray[size]
			remaining -= countArray[size]
			if available > remaining {
				return nil, fmt.Errorf("%w: incomplete code lengths", ErrMalformedContainer)
			}
		}
		if available != 0 {
			return nil, fmt.Errorf("%w: incomplete code lengths", ErrMalformedContainer)
		}
	}

	t := newTable(len(sorted))
	assignCanonical(t, sorted)
	return t, nil
}

// Canonical returns the canonical Table with the same code lengths as t.
// Its codes are interchangeable with t's for compression purposes, but can
// be reconstructed from SizeBySymbol alone.
func (t *Table) Canonical() *Table {
	sorted := make(bySize, 0, len(t.codes))
	for symbol, hc := range t.codes {
		sorted = append(sorted, symbolAndSize{symbol, hc.Size})
	}
	sorted.Sort()

	out := newTable(len(sorted))
	assignCanonical(out, sorted)
	return out
}

// Encode returns the Code for the given Symbol, if it has one.
func (t *Table) Encode(symbol Symbol) (Code, bool) {
	hc, found := t.codes[symbol]
	return hc, found
}

// Decode returns the Symbol whose Code is exactly hc, or InvalidSymbol.
func (t *Table) Decode(hc Code) Symbol {
	if symbol, found := t.symbols[hc]; found {
		return symbol
	}
	return InvalidSymbol
}

// Len returns the number of Symbols in the table.
func (t *Table) Len() int {
	return len(t.codes)
}

// MinSize is the bit length of the shortest legal code.
func (t *Table) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest legal code.
func (t *Table) MaxSize() byte {
	return t.maxSize
}

// Symbols returns the table's Symbols in ascending order.
func (t *Table) Symbols() []Symbol {
	out := make(bySymbol, 0, len(t.codes))
	for symbol := range t.codes {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// SizeBySymbol returns the bit length of each Symbol's Code.  This map can
// be transmitted to another party and used by NewCanonicalTable to
// reconstruct the canonical form of this Table on the receiving end.
func (t *Table) SizeBySymbol() map[Symbol]byte {
	out := make(map[Symbol]byte, len(t.codes))
	for symbol, hc := range t.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Table's current
// state to the given writer.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func newTable(capacity int) *Table {
	return &Table{
		codes:   make(map[Symbol]Code, capacity),
		symbols: make(map[Code]Symbol, capacity),
	}
}

func (t *Table) add(symbol Symbol, hc Code) {
	assert.Assertf(hc.Size != 0, "empty code for symbol %d", symbol)
	if len(t.codes) == 0 {
		t.minSize = hc.Size
		t.maxSize = hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	t.codes[symbol] = hc
	t.symbols[hc] = symbol
}

// assignCanonical assigns the codes sequentially, per the algorithm detailed
// at <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
// The input must already be sorted.
func assignCanonical(t *Table, sorted bySize) {
	if len(sorted) == 0 {
		return
	}
	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		t.add(item.symbol, MakeCode(item.size, nextCode))
		nextCode++
	}
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	ay, ai := a.symbol, a.size
	by, bi := b.symbol, b.size
	if ai != bi {
		return ai < bi
	}
	return ay < by
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
