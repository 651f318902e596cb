package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: `""`},
		{size: 1, bits: 0x00, expect: `"0"`},
		{size: 1, bits: 0x01, expect: `"1"`},
		{size: 4, bits: 0x03, expect: `"0011"`},
		{size: 8, bits: 0xa1, expect: `"10100001"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		if actual := hc.String(); actual != row.expect {
			t.Errorf("MakeCode(%d, %#x).String(): expected %s, got %s", row.size, row.bits, row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []bool{true, false, true, true} {
		hc = hc.Append(bit)
	}
	if expect := MakeCode(4, 0x0b); hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}
	for i, expect := range []bool{true, false, true, true} {
		if actual := hc.Bit(byte(i)); actual != expect {
			t.Errorf("Bit(%d): expected %v, got %v", i, expect, actual)
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	type testRow struct {
		a, b   Code
		expect bool
	}

	testData := [...]testRow{
		{a: MakeCode(0, 0), b: MakeCode(3, 5), expect: true},
		{a: MakeCode(1, 1), b: MakeCode(3, 5), expect: true},
		{a: MakeCode(2, 2), b: MakeCode(3, 5), expect: true},
		{a: MakeCode(3, 5), b: MakeCode(3, 5), expect: true},
		{a: MakeCode(2, 3), b: MakeCode(3, 5), expect: false},
		{a: MakeCode(4, 10), b: MakeCode(3, 5), expect: false},
		{a: MakeCode(1, 0), b: MakeCode(64, 1<<62), expect: true},
		{a: MakeCode(1, 1), b: MakeCode(64, 1<<62), expect: false},
	}
	for _, row := range testData {
		if actual := row.a.IsPrefixOf(row.b); actual != row.expect {
			t.Errorf("%s.IsPrefixOf(%s): expected %v, got %v", row.a, row.b, row.expect, actual)
		}
	}
}
