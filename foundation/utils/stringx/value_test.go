// File: value_test.go
// Title: Value and Sequence Tests
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12

package stringx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValue(t *testing.T) {
	if v := Missing[string](); !v.IsNA() || v.Or("x") != "x" {
		t.Errorf("Missing = %+v", v)
	}
	if v := Some(""); v.IsNA() || v.Or("x") != "" {
		t.Errorf("Some(\"\") = %+v, empty must not be NA", v)
	}
	if got, ok := Some(3).Get(); !ok || got != 3 {
		t.Errorf("Get() = %d, %v", got, ok)
	}
	var zero Value[int]
	if !zero.IsNA() {
		t.Error("zero Value should be NA")
	}
}

func TestSequenceString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"strings", seq("a", na, "").String(), `["a" NA ""]`},
		{"ints", iseq(1, nil, -2).String(), `[1 NA -2]`},
		{"logicals", lseq(true, nil).String(), `[true NA]`},
		{"empty", StringSeq{}.String(), `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestValuesAndHasNA(t *testing.T) {
	s := seq("a", na, "c")
	if !s.HasNA() {
		t.Error("HasNA() = false")
	}
	if Strings("a").HasNA() {
		t.Error("HasNA() = true for NA-free sequence")
	}
	if diff := cmp.Diff([]string{"a", "NA", "c"}, s.Values("NA")); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}
