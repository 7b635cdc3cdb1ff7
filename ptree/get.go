package ptree

import (
	"fmt"
	"strconv"
)

// Scalar enumerates the value types a leaf can be converted to. Conversion
// happens on demand from the node's data string, so the same tree can feed
// differently typed schemas.
type Scalar interface {
	bool | string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// KeyError reports a key that is not present in the tree.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string { return fmt.Sprintf("ptree: no such key %q", e.Key) }

// ConvError reports a leaf value that could not be converted to the requested
// scalar type.
type ConvError struct {
	Value  string
	Target string
	Err    error
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("ptree: cannot convert %q to %s", e.Value, e.Target)
}

func (e *ConvError) Unwrap() error { return e.Err }

// As converts the node's own data string to T.
func As[T Scalar](n *Node) (T, error) {
	var out T
	if err := parseInto(n.value, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Get converts the first child under key to T. A missing key yields a
// *KeyError, a present but unconvertible value a *ConvError.
func Get[T Scalar](n *Node, key string) (T, error) {
	var zero T
	c, ok := n.Child(key)
	if !ok {
		return zero, &KeyError{Key: key}
	}
	return As[T](c)
}

// GetOpt converts the first child under key to T, returning nil without error
// when the key is absent. A present but unconvertible value still fails.
func GetOpt[T Scalar](n *Node, key string) (*T, error) {
	c, ok := n.Child(key)
	if !ok {
		return nil, nil
	}
	v, err := As[T](c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseInto(s string, dst any) error {
	switch p := dst.(type) {
	case *string:
		*p = s
	case *bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return &ConvError{Value: s, Target: "bool", Err: err}
		}
		*p = v
	case *int:
		v, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err != nil {
			return &ConvError{Value: s, Target: "int", Err: err}
		}
		*p = int(v)
	case *int8:
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return &ConvError{Value: s, Target: "int8", Err: err}
		}
		*p = int8(v)
	case *int16:
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return &ConvError{Value: s, Target: "int16", Err: err}
		}
		*p = int16(v)
	case *int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return &ConvError{Value: s, Target: "int32", Err: err}
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return &ConvError{Value: s, Target: "int64", Err: err}
		}
		*p = v
	case *uint:
		v, err := strconv.ParseUint(s, 10, strconv.IntSize)
		if err != nil {
			return &ConvError{Value: s, Target: "uint", Err: err}
		}
		*p = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return &ConvError{Value: s, Target: "uint8", Err: err}
		}
		*p = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return &ConvError{Value: s, Target: "uint16", Err: err}
		}
		*p = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return &ConvError{Value: s, Target: "uint32", Err: err}
		}
		*p = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return &ConvError{Value: s, Target: "uint64", Err: err}
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return &ConvError{Value: s, Target: "float32", Err: err}
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &ConvError{Value: s, Target: "float64", Err: err}
		}
		*p = v
	default:
		return &ConvError{Value: s, Target: fmt.Sprintf("%T", dst)}
	}
	return nil
}
