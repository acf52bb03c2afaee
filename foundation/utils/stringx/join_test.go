// File: join_test.go
// Title: Join2 and Join Tests
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12

package stringx

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
)

func TestJoin2(t *testing.T) {
	tests := []struct {
		name string
		a, b StringSeq
		want StringSeq
	}{
		{"empty a returns b", seq(), seq("x"), seq("x")},
		{"empty b returns a", seq("a", na), seq(), seq("a", na)},
		{"both empty", seq(), seq(), seq()},
		{"recycle b", seq("a", "b"), seq("x"), seq("ax", "bx")},
		{"recycle a", seq("a"), seq("x", "y", "z"), seq("ax", "ay", "az")},
		{"missing a", seq(na), seq("x"), seq(na)},
		{"missing b", seq("a", "b"), seq("x", na), seq("ax", na)},
		{"empty strings", seq("", "a", ""), seq("", "", "b"), seq("", "a", "b")},
		{"mismatched lengths", seq("a", "b", "c"), seq("1", "2"), seq("a1", "b2", "c1")},
		{"varying sizes", seq("long-prefix", "s"), seq("1", "22", "333", "4444"), seq("long-prefix1", "s22", "long-prefix333", "s4444")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join2(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Join2() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Join2() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoin2BufferUse(t *testing.T) {
	var stats Stats
	got, err := Join2(seq("ab"), seq("x", "yy", "z"), WithStats(&stats))
	if err != nil {
		t.Fatalf("Join2() error = %v", err)
	}
	if diff := cmp.Diff(seq("abx", "abyy", "abz"), got); diff != "" {
		t.Errorf("Join2() mismatch (-want +got):\n%s", diff)
	}
	want := Stats{BufferBytes: 4, BytesCopied: 2 + 1 + 2 + 1, Allocations: 1}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestJoin2SkipsPrefixWhenAllPartnersMissing(t *testing.T) {
	var stats Stats
	if _, err := Join2(seq("abc"), seq(na, na), WithStats(&stats)); err != nil {
		t.Fatalf("Join2() error = %v", err)
	}
	if stats.BytesCopied != 0 {
		t.Errorf("BytesCopied = %d, want 0", stats.BytesCopied)
	}
}

func TestJoin2Limit(t *testing.T) {
	_, err := Join2(seq("abc"), seq("de"), WithMaxBufferBytes(4))
	if !mdwerror.HasCode(err, mdwerror.CodeResourceExhausted) {
		t.Errorf("error = %v, want CodeResourceExhausted", err)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		seqs []StringSeq
		want StringSeq
	}{
		{"no sequences", nil, seq()},
		{"only empty", []StringSeq{seq(), seq()}, seq()},
		{"single", []StringSeq{seq(), seq("a", na)}, seq("a", na)},
		{"pair", []StringSeq{seq("a", "b"), seq("x")}, seq("ax", "bx")},
		{"three", []StringSeq{seq("a", "b"), seq("-"), seq("1", "2")}, seq("a-1", "b-2")},
		{"missing in middle", []StringSeq{seq("a", "b"), seq("-", na), seq("1")}, seq("a-1", na)},
		{"skips empty operands", []StringSeq{seq("a"), seq(), seq("b"), seq("c", "d")}, seq("abc", "abd")},
		{
			"recycles each operand on its own",
			[]StringSeq{seq("a", "b", "c"), seq("1", "2"), seq("x", "y", "z", "w")},
			seq("a1x", "b2y", "c1z", "a2w"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join(tt.seqs)
			if err != nil {
				t.Fatalf("Join() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Join() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinWarnsOnce(t *testing.T) {
	var warnings WarningCollector
	_, err := Join([]StringSeq{seq("a", "b", "c"), seq("1", "2"), seq("x", "y")}, WithWarner(&warnings))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	got := warnings.Warnings()
	if len(got) != 1 || got[0].Operation != "join" {
		t.Errorf("warnings = %v", got)
	}
}

func TestJoinSingleAllocation(t *testing.T) {
	var stats Stats
	_, err := Join([]StringSeq{seq("a", "bbb"), seq("c"), seq("dd", "e", "f", "g")}, WithStats(&stats))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if stats.Allocations != 1 || stats.BufferBytes != 5 {
		t.Errorf("Stats = %+v, want one allocation of 5 bytes", stats)
	}
}
