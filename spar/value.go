package spar

import (
	"math"
	"strconv"
)

// Kind identifies the payload type of a Value. The kind is fixed when the
// value is constructed; parsing only ever mutates the payload.
type Kind string

const (
	KindBool   Kind = "bool"
	KindLong   Kind = "long"   // int64
	KindULong  Kind = "ulong"  // uint64
	KindFloat  Kind = "float"  // float32
	KindDouble Kind = "double" // float64
	KindString Kind = "string"
)

// Value is a typed flag payload. The zero Value is not usable; construct one
// with BoolValue, LongValue, ULongValue, FloatValue, DoubleValue or
// StringValue.
type Value struct {
	kind      Kind
	boolVal   bool
	longVal   int64
	ulongVal  uint64
	floatVal  float32
	doubleVal float64
	strVal    string
}

// BoolValue constructs a boolean Value.
func BoolValue(v bool) Value { return Value{kind: KindBool, boolVal: v} }

// LongValue constructs a signed 64-bit integer Value.
func LongValue(v int64) Value { return Value{kind: KindLong, longVal: v} }

// ULongValue constructs an unsigned 64-bit integer Value.
func ULongValue(v uint64) Value { return Value{kind: KindULong, ulongVal: v} }

// FloatValue constructs a single-precision Value.
func FloatValue(v float32) Value { return Value{kind: KindFloat, floatVal: v} }

// DoubleValue constructs a double-precision Value.
func DoubleValue(v float64) Value { return Value{kind: KindDouble, doubleVal: v} }

// StringValue constructs a string Value.
func StringValue(v string) Value { return Value{kind: KindString, strVal: v} }

// Kind returns the fixed kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Typed payload accessors. Each returns the payload when the kind matches
// and the type's zero value otherwise.

func (v Value) Bool() bool      { return v.boolVal }
func (v Value) Long() int64     { return v.longVal }
func (v Value) ULong() uint64   { return v.ulongVal }
func (v Value) Float() float32  { return v.floatVal }
func (v Value) Double() float64 { return v.doubleVal }
func (v Value) Str() string     { return v.strVal }

// String renders the value in its natural textual form. String-kind values
// are wrapped in literal double quotes.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindLong:
		return strconv.FormatInt(v.longVal, 10)
	case KindULong:
		return strconv.FormatUint(v.ulongVal, 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.floatVal), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.doubleVal, 'g', -1, 64)
	case KindString:
		return `"` + v.strVal + `"`
	default:
		return ""
	}
}

// parseFrom converts token into the value's existing kind and stores it.
// Boolean values are never parsed; the parser toggles them instead.
//
// String tokens that start with a double quote are stored with their first
// and last byte removed. The last byte is intentionally not checked to also
// be a quote: shells usually strip balanced quotes before the process sees
// them, and the historical behavior for the unbalanced case is to trim
// blindly. See TestStringUnbalancedQuote.
func (v *Value) parseFrom(token string) error {
	switch v.kind {
	case KindLong:
		n, ok := parseLong(token)
		if !ok {
			return &ParseError{
				Type:    ErrorTypeParseFailure,
				Message: "invalid long value: " + strconv.Quote(token),
				Token:   token,
			}
		}
		v.longVal = n
	case KindULong:
		n, ok := parseULong(token)
		if !ok {
			return &ParseError{
				Type:    ErrorTypeParseFailure,
				Message: "invalid ulong value: " + strconv.Quote(token),
				Token:   token,
			}
		}
		v.ulongVal = n
	case KindFloat:
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return &ParseError{
				Type:    ErrorTypeParseFailure,
				Message: "invalid float value: " + strconv.Quote(token),
				Token:   token,
			}
		}
		v.floatVal = float32(f)
	case KindDouble:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return &ParseError{
				Type:    ErrorTypeParseFailure,
				Message: "invalid double value: " + strconv.Quote(token),
				Token:   token,
			}
		}
		v.doubleVal = f
	case KindString:
		if len(token) > 0 && token[0] == '"' {
			trimmed := token[1:]
			if len(trimmed) > 0 {
				trimmed = trimmed[:len(trimmed)-1]
			}
			v.strVal = trimmed
		} else {
			v.strVal = token
		}
	default:
		return &ParseError{
			Type:    ErrorTypeInternal,
			Message: "value kind cannot be parsed: " + string(v.kind),
		}
	}
	return nil
}

// parseLong parses a signed decimal integer using direct ASCII math with
// overflow checks. Rejects empty tokens, bare signs and any non-digit byte.
func parseLong(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	negative := false
	start := 0
	switch s[0] {
	case '-':
		negative = true
		start = 1
	case '+':
		start = 1
	}
	if start == len(s) {
		return 0, false
	}

	var result int64
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		digit := int64(c - '0')
		if result > (math.MaxInt64-digit)/10 {
			return 0, false
		}
		result = result*10 + digit
	}

	if negative {
		result = -result
	}
	return result, true
}

// parseULong parses an unsigned decimal integer. A leading '+' is accepted,
// a leading '-' is not.
func parseULong(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}

	start := 0
	if s[0] == '+' {
		start = 1
	}
	if start == len(s) {
		return 0, false
	}

	var result uint64
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		digit := uint64(c - '0')
		if result > (math.MaxUint64-digit)/10 {
			return 0, false
		}
		result = result*10 + digit
	}

	return result, true
}
