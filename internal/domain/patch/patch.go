// Package patch models JSON fields that distinguish "absent" from "clear"
// from "set". A zero value means the key was not in the payload at all;
// decoding JSON null or an empty string marks the field for clearing.
package patch

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var nullLiteral = []byte("null")

// String is a tri-state text field.
type String struct {
	Value string
	Set   bool
	Null  bool
}

func (s *String) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		s.Null = true
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if strings.TrimSpace(v) == "" {
		s.Null = true
		return nil
	}
	s.Value = v
	s.Set = true
	return nil
}

// Number is a tri-state numeric field. It accepts a JSON number or a numeric
// string ("7", "7%" is not accepted here; percent parsing happens upstream).
// A non-numeric string records Invalid instead of failing the whole decode,
// so the caller can report the offending field by name.
type Number struct {
	Value   float64
	Set     bool
	Null    bool
	Invalid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullLiteral) {
		n.Null = true
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			n.Null = true
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			n.Invalid = true
			return nil
		}
		n.Value = v
		n.Set = true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		n.Invalid = true
		return nil
	}
	n.Value = v
	n.Set = true
	return nil
}

// Int is a tri-state integer field with the same string leniency as Number.
// A fractional input records Invalid.
type Int struct {
	Value   int64
	Set     bool
	Null    bool
	Invalid bool
}

func (i *Int) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	switch {
	case n.Null:
		i.Null = true
	case n.Invalid:
		i.Invalid = true
	case n.Set:
		if n.Value != float64(int64(n.Value)) {
			i.Invalid = true
			return nil
		}
		i.Value = int64(n.Value)
		i.Set = true
	}
	return nil
}
