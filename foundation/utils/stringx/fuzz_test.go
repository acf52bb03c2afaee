// File: fuzz_test.go
// Title: Buffer Sizing Fuzz Test
// Description: Checks that the scratch buffer is always large enough for
//              every element written, over random element sizes, counts,
//              missing values and operand lengths.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12

package stringx

import (
	"strings"
	"testing"
)

// fuzzSeq turns each byte into an element: 0xff is NA, otherwise a string
// of b%7 bytes.
func fuzzSeq(data []byte) StringSeq {
	out := make(StringSeq, len(data))
	for i, b := range data {
		if b == 0xff {
			continue
		}
		out[i] = Some(strings.Repeat(string(rune('a'+i%26)), int(b%7)))
	}
	return out
}

// fuzzCounts turns each byte into a count in [-2, 12]; 0xff is NA
func fuzzCounts(data []byte) IntSeq {
	out := make(IntSeq, len(data))
	for i, b := range data {
		if b == 0xff {
			continue
		}
		out[i] = Some(int(b%15) - 2)
	}
	return out
}

func FuzzBufferSizing(f *testing.F) {
	f.Add([]byte{}, []byte{}, []byte{})
	f.Add([]byte{1}, []byte{0}, []byte{})
	f.Add([]byte{1}, []byte{3, 4, 5, 6}, []byte{2})
	f.Add([]byte{0, 0xff, 6}, []byte{14, 0xff}, []byte{0, 1, 2, 3, 4})
	f.Add([]byte{5, 5, 5}, []byte{1}, []byte{0xff})

	f.Fuzz(func(t *testing.T, strData, countData, otherData []byte) {
		strs := fuzzSeq(strData)
		counts := fuzzCounts(countData)
		other := fuzzSeq(otherData)

		var stats Stats
		dup, err := Dup(strs, counts, WithStats(&stats))
		if err != nil {
			t.Fatalf("Dup() error = %v", err)
		}
		if want := NewPlan(len(strs), len(counts)).N; len(dup) != want {
			t.Fatalf("len(Dup()) = %d, want %d", len(dup), want)
		}
		for i, v := range dup {
			s, c := strs[i%len(strs)], counts[i%len(counts)]
			if !s.Valid || !c.Valid || c.V < 0 {
				if v.Valid {
					t.Fatalf("Dup()[%d] = %v, want NA", i, v)
				}
				continue
			}
			if want := strings.Repeat(s.V, c.V); v.V != want {
				t.Fatalf("Dup()[%d] = %q, want %q", i, v.V, want)
			}
			if len(v.V) > stats.BufferBytes {
				t.Fatalf("Dup()[%d] has %d bytes, buffer has %d", i, len(v.V), stats.BufferBytes)
			}
		}

		joined, err := Join2(strs, other, WithStats(&stats))
		if err != nil {
			t.Fatalf("Join2() error = %v", err)
		}
		if len(strs) > 0 && len(other) > 0 {
			for j, v := range joined {
				x, y := strs[j%len(strs)], other[j%len(other)]
				if !x.Valid || !y.Valid {
					if v.Valid {
						t.Fatalf("Join2()[%d] = %v, want NA", j, v)
					}
					continue
				}
				if v.V != x.V+y.V {
					t.Fatalf("Join2()[%d] = %q, want %q", j, v.V, x.V+y.V)
				}
				if len(v.V) > stats.BufferBytes {
					t.Fatalf("Join2()[%d] has %d bytes, buffer has %d", j, len(v.V), stats.BufferBytes)
				}
			}
		}

		flat, err := FlattenSep(strs, other, WithStats(&stats))
		if err != nil {
			t.Fatalf("FlattenSep() error = %v", err)
		}
		if len(flat) == 1 && flat[0].Valid && len(flat[0].V) != stats.BufferBytes {
			t.Fatalf("FlattenSep() wrote %d bytes into a %d byte buffer", len(flat[0].V), stats.BufferBytes)
		}
	})
}
