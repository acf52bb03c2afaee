// ============================================================================
// strvec - Vectorized string primitives
// ============================================================================
//
// Package:     coerce
// Description: Input documents holding named vectors in YAML, JSON or TOML,
//              transcoded to UTF-8 before decoding
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package coerce

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	mdwerrors "github.com/msto63/strvec/foundation/core/errors"
	"github.com/msto63/strvec/foundation/utils/stringx"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a set of named vectors read from an input file
type Document struct {
	path     string
	vectors  map[string]any
	naString string
}

// DocumentOption configures LoadDocument
type DocumentOption func(*Document)

// WithNAString makes string entries equal to na decode as NA. TOML has no
// null, so this is the only way to write NA there.
func WithNAString(na string) DocumentOption {
	return func(d *Document) {
		d.naString = na
	}
}

// LoadDocument reads a document. The format follows the file extension:
// .yaml, .yml and .json are decoded with the YAML decoder, .toml with the
// TOML decoder. encoding names the file's character set (any WHATWG label,
// empty means UTF-8).
func LoadDocument(path, encoding string, opts ...DocumentOption) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "input document not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation(mdwerrors.ModuleCoerce + ".load_document").
				WithDetail("path", path)
		}
		return nil, mdwerrors.OperationError(mdwerrors.ModuleCoerce, "load_document", err, map[string]interface{}{"path": path})
	}

	text, err := ToUTF8(content, encoding)
	if err != nil {
		return nil, err
	}

	doc := &Document{path: path, vectors: make(map[string]any)}
	for _, opt := range opts {
		opt(doc)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		err = yaml.Unmarshal(text, &doc.vectors)
	case ".toml":
		_, err = toml.Decode(string(text), &doc.vectors)
	default:
		return nil, mdwerrors.FormatError(mdwerrors.ModuleCoerce, path, "yaml, yml, json or toml file")
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot decode input document").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation(mdwerrors.ModuleCoerce + ".load_document").
			WithDetail("path", path)
	}
	if doc.vectors == nil {
		doc.vectors = make(map[string]any)
	}
	return doc, nil
}

// ToUTF8 transcodes content from the named encoding to UTF-8 and verifies
// the result. A leading byte order mark is dropped.
func ToUTF8(content []byte, encoding string) ([]byte, error) {
	name := "utf-8"
	if strings.TrimSpace(encoding) != "" {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, mdwerrors.EncodingError(mdwerrors.ModuleCoerce, "to_utf8", encoding, err)
		}
		if name, err = htmlindex.Name(enc); err != nil {
			return nil, mdwerrors.EncodingError(mdwerrors.ModuleCoerce, "to_utf8", encoding, err)
		}
		if name != "utf-8" {
			content, err = enc.NewDecoder().Bytes(content)
			if err != nil {
				return nil, mdwerrors.EncodingError(mdwerrors.ModuleCoerce, "to_utf8", name, err)
			}
		}
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, mdwerrors.EncodingError(mdwerrors.ModuleCoerce, "to_utf8", name, nil)
	}
	return content, nil
}

// Path returns the file the document was read from
func (d *Document) Path() string {
	return d.path
}

// Names returns the vector names in sorted order
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.vectors))
	for name := range d.vectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the document contains the named vector
func (d *Document) Has(name string) bool {
	_, ok := d.vectors[name]
	return ok
}

// Strings returns the named vector as a StringSeq
func (d *Document) Strings(name string) (stringx.StringSeq, error) {
	raw, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	seq, err := ToStringSeq(raw)
	if err != nil {
		return nil, mdwerror.Wrap(err, "vector "+name).WithDetail("vector", name)
	}
	if d.naString != "" {
		for i, v := range seq {
			if v.Valid && v.V == d.naString {
				seq[i] = stringx.Missing[string]()
			}
		}
	}
	return seq, nil
}

// Ints returns the named vector as an IntSeq
func (d *Document) Ints(name string) (stringx.IntSeq, error) {
	raw, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	if d.naString != "" {
		raw = dropNAStrings(raw, d.naString)
	}
	seq, err := ToIntSeq(raw)
	if err != nil {
		return nil, mdwerror.Wrap(err, "vector "+name).WithDetail("vector", name)
	}
	return seq, nil
}

func (d *Document) lookup(name string) (any, error) {
	raw, ok := d.vectors[name]
	if !ok {
		return nil, mdwerror.New("vector not found in input document: " + name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation(mdwerrors.ModuleCoerce + ".lookup").
			WithDetails(map[string]interface{}{"vector": name, "path": d.path})
	}
	return raw, nil
}

// dropNAStrings replaces entries equal to na with nil
func dropNAStrings(raw any, na string) any {
	items, ok := raw.([]any)
	if !ok {
		if s, isString := raw.(string); isString && s == na {
			return []any{nil}
		}
		return raw
	}
	out := make([]any, len(items))
	for i, item := range items {
		if s, isString := item.(string); isString && s == na {
			continue
		}
		out[i] = item
	}
	return out
}
