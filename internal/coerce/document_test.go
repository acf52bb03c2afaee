package coerce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	"github.com/msto63/strvec/foundation/utils/stringx"
)

func writeDoc(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}
	return path
}

func TestLoadDocumentFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		opts    []DocumentOption
	}{
		{"yaml", "in.yaml", "strs: [ab, null, c]\ncounts: [1, 2, 3]\n", nil},
		{"json", "in.json", `{"strs": ["ab", null, "c"], "counts": [1, 2, 3]}`, nil},
		{"toml", "in.toml", "strs = [\"ab\", \"NA\", \"c\"]\ncounts = [1, 2, 3]\n", []DocumentOption{WithNAString("NA")}},
	}

	wantStrs := stringx.StringSeq{stringx.Some("ab"), {}, stringx.Some("c")}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := LoadDocument(writeDoc(t, tt.file, []byte(tt.content)), "", tt.opts...)
			if err != nil {
				t.Fatalf("LoadDocument() error = %v", err)
			}
			if diff := cmp.Diff([]string{"counts", "strs"}, doc.Names()); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}

			strs, err := doc.Strings("strs")
			if err != nil {
				t.Fatalf("Strings() error = %v", err)
			}
			if diff := cmp.Diff(wantStrs, strs); diff != "" {
				t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
			}

			counts, err := doc.Ints("counts")
			if err != nil {
				t.Fatalf("Ints() error = %v", err)
			}
			if diff := cmp.Diff(stringx.Ints(1, 2, 3), counts); diff != "" {
				t.Errorf("Ints() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadDocumentTranscodes(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("strs: [Müller, Größe]\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := writeDoc(t, "latin1.yaml", latin1)

	if _, err := LoadDocument(path, ""); !mdwerror.HasCode(err, mdwerror.CodeEncodingError) {
		t.Errorf("reading latin-1 as UTF-8: error = %v, want CodeEncodingError", err)
	}

	doc, err := LoadDocument(path, "latin1")
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	strs, err := doc.Strings("strs")
	if err != nil {
		t.Fatalf("Strings() error = %v", err)
	}
	if diff := cmp.Diff(stringx.Strings("Müller", "Größe"), strs); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocumentErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		encoding string
		want     mdwerror.Code
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, "", mdwerror.CodeNotFound},
		{"unknown extension", func(t *testing.T) string { return writeDoc(t, "in.csv", []byte("a,b")) }, "", mdwerror.CodeInvalidFormat},
		{"broken yaml", func(t *testing.T) string { return writeDoc(t, "in.yaml", []byte("strs: [a, b")) }, "", mdwerror.CodeInvalidFormat},
		{"unknown encoding", func(t *testing.T) string { return writeDoc(t, "in.yaml", []byte("a: 1")) }, "klingon", mdwerror.CodeEncodingError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDocument(tt.path(t), tt.encoding)
			if !mdwerror.HasCode(err, tt.want) {
				t.Errorf("LoadDocument() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestDocumentLookup(t *testing.T) {
	doc, err := LoadDocument(writeDoc(t, "in.yaml", []byte("strs: [a]\nnested: [[1]]\n")), "")
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if _, err := doc.Strings("missing"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Strings(missing) error = %v, want CodeNotFound", err)
	}
	if _, err := doc.Ints("nested"); !mdwerror.HasCode(err, mdwerror.CodeTypeMismatch) {
		t.Errorf("Ints(nested) error = %v, want CodeTypeMismatch", err)
	}
	if !doc.Has("strs") || doc.Has("missing") {
		t.Error("Has() gives wrong answers")
	}
}

func TestToUTF8StripsBOM(t *testing.T) {
	got, err := ToUTF8([]byte("\xEF\xBB\xBFabc"), "utf-8")
	if err != nil {
		t.Fatalf("ToUTF8() error = %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("ToUTF8() = %q", got)
	}
}
