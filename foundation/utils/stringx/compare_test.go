// File: compare_test.go
// Title: Comparison and Ordering Tests
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

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b StringSeq
		want IntSeq
	}{
		{"basic", seq("a", "b", "b"), seq("b", "b", "a"), iseq(-1, 0, 1)},
		{"prefix is smaller", seq("ab"), seq("abc"), iseq(-1)},
		{"empty string", seq(""), seq("a"), iseq(-1)},
		{"missing", seq(na, "a"), seq("a", na), iseq(nil, nil)},
		{"recycling", seq("m"), seq("a", "m", "z"), iseq(1, 0, -1)},
		{"code point order", seq("z", "ä"), seq("ä", "z"), iseq(-1, 1)},
		{"empty operand", seq(), seq("a"), iseq()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Compare(tt.a, tt.b)); diff != "" {
				t.Errorf("Compare() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareWith(t *testing.T) {
	a := seq("a", "b", "c", na)
	b := seq("b", "b", "b", "b")

	tests := []struct {
		op   CompareOp
		want LogicalSeq
	}{
		{OpEqual, lseq(false, true, false, nil)},
		{OpNotEqual, lseq(true, false, true, nil)},
		{OpLess, lseq(true, false, false, nil)},
		{OpLessEqual, lseq(true, true, false, nil)},
		{OpGreater, lseq(false, false, true, nil)},
		{OpGreaterEqual, lseq(false, true, true, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, CompareWith(a, b, tt.op)); diff != "" {
				t.Errorf("CompareWith(%s) mismatch (-want +got):\n%s", tt.op, diff)
			}
		})
	}
}

func TestParseCompareOp(t *testing.T) {
	for in, want := range map[string]CompareOp{
		"==": OpEqual, "ne": OpNotEqual, "<": OpLess, "LE": OpLessEqual, " > ": OpGreater, "ge": OpGreaterEqual,
	} {
		got, err := ParseCompareOp(in)
		if err != nil || got != want {
			t.Errorf("ParseCompareOp(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	_, err := ParseCompareOp("~")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ParseCompareOp(~) error = %v, want CodeInvalidInput", err)
	}
}

func TestOrder(t *testing.T) {
	in := seq("b", na, "a", "c", "a", na)

	tests := []struct {
		name       string
		decreasing bool
		na         NAPlacement
		want       []int
	}{
		{"increasing na last", false, NALast, []int{2, 4, 0, 3, 1, 5}},
		{"increasing na first", false, NAFirst, []int{1, 5, 2, 4, 0, 3}},
		{"increasing na removed", false, NARemove, []int{2, 4, 0, 3}},
		{"decreasing keeps ties stable", true, NALast, []int{3, 0, 2, 4, 1, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Order(in, tt.decreasing, tt.na)); diff != "" {
				t.Errorf("Order() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSort(t *testing.T) {
	got := Sort(seq("banana", na, "apple", "Cherry"), false, NAFirst)
	if diff := cmp.Diff(seq(na, "Cherry", "apple", "banana"), got); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNAPlacement(t *testing.T) {
	for in, want := range map[string]NAPlacement{"": NALast, "last": NALast, "FIRST": NAFirst, "remove": NARemove} {
		if got, err := ParseNAPlacement(in); err != nil || got != want {
			t.Errorf("ParseNAPlacement(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseNAPlacement("middle"); err == nil {
		t.Error("ParseNAPlacement(middle) should fail")
	}
}
