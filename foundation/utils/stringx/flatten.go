// File: flatten.go
// Title: Sequence Flattening
// Description: Flatten and FlattenSep concatenate a whole sequence into a
//              single string, sizing the output in one pass and filling it
//              in a second.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

// Flatten concatenates all elements into a one-element sequence. An empty
// input is returned unchanged; any NA element makes the result [NA].
func Flatten(strs StringSeq, opts ...Option) (StringSeq, error) {
	if len(strs) == 0 {
		return strs, nil
	}
	return flatten(opFlatten, strs, "", newOptions(opts))
}

// FlattenSep concatenates all elements with sep[0] between adjacent
// elements. Empty strs or an empty sep yield an empty sequence. Extra
// separators are ignored with a WarnMultipleSeparators warning; an NA
// separator or NA element makes the result [NA].
func FlattenSep(strs, sep StringSeq, opts ...Option) (StringSeq, error) {
	if len(strs) == 0 || len(sep) == 0 {
		return StringSeq{}, nil
	}

	o := newOptions(opts)
	if len(sep) > 1 {
		o.warn(Warning{
			Kind:      WarnMultipleSeparators,
			Operation: opFlattenSep,
			Message:   "multiple separators given, using the first",
			Details:   map[string]interface{}{"separators": len(sep)},
		})
	}
	if !sep[0].Valid {
		return StringSeq{Missing[string]()}, nil
	}
	return flatten(opFlattenSep, strs, sep[0].V, o)
}

func flatten(operation string, strs StringSeq, sep string, o *options) (StringSeq, error) {
	size := 0
	for i, s := range strs {
		if !s.Valid {
			return StringSeq{Missing[string]()}, nil
		}
		if i > 0 {
			size = addSize(size, len(sep))
		}
		size = addSize(size, len(s.V))
	}

	sc, err := acquire(o, operation, size)
	if err != nil {
		return nil, err
	}
	defer sc.release()

	n := 0
	for i, s := range strs {
		if i > 0 {
			n += sc.writeAt(n, sep)
		}
		n += sc.writeAt(n, s.V)
	}
	return StringSeq{Some(string(sc.buf[:n]))}, nil
}
