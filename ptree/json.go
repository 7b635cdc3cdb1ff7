package ptree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// ParseJSON builds a property tree from JSON text. Object keys become child
// keys in document order, array elements become children with empty keys
// (boost property_tree convention), and every scalar is stored as its text
// form: numbers keep their source spelling, null becomes the empty string.
func ParseJSON(b []byte) (*Node, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	root, err := jsonValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("json: trailing data after document")
	}
	return root, nil
}

func jsonValue(dec *gojson.Decoder, tok gojson.Token) (*Node, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %v", t)
	case string:
		return Leaf(t), nil
	case gojson.Number:
		return Leaf(t.String()), nil
	case float64:
		return Leaf(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case bool:
		return Leaf(strconv.FormatBool(t)), nil
	case nil:
		return Leaf(""), nil
	}
	return nil, fmt.Errorf("json: unexpected token %v", tok)
}

func jsonObject(dec *gojson.Decoder) (*Node, error) {
	n := New()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		if d, ok := tok.(gojson.Delim); ok && d == '}' {
			return n, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: object key is not a string: %v", tok)
		}
		vtok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		child, err := jsonValue(dec, vtok)
		if err != nil {
			return nil, err
		}
		n.Add(key, child)
	}
}

func jsonArray(dec *gojson.Decoder) (*Node, error) {
	n := New()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		if d, ok := tok.(gojson.Delim); ok && d == ']' {
			return n, nil
		}
		child, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		n.Add("", child)
	}
}
