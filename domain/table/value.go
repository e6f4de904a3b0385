package table

import (
	"fmt"
	"time"
)

// Value represents a typed cell value with a first-class missing marker
type Value struct {
	Type         ValueType  `json:"type"`
	StringVal    *string    `json:"string_val,omitempty"`
	NumericVal   *float64   `json:"numeric_val,omitempty"`
	IntegerVal   *int64     `json:"integer_val,omitempty"`
	TimestampVal *time.Time `json:"timestamp_val,omitempty"`
}

// ValueType defines the storage type for cell values
type ValueType string

const (
	ValueTypeString    ValueType = "string"
	ValueTypeNumeric   ValueType = "numeric"
	ValueTypeInteger   ValueType = "integer"
	ValueTypeTimestamp ValueType = "timestamp"
	ValueTypeMissing   ValueType = "missing"
)

// NewStringValue creates a string value. The empty string is a legal value;
// blank-to-missing conversion is a cleaning stage decision, not a storage one.
func NewStringValue(s string) Value {
	return Value{Type: ValueTypeString, StringVal: &s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewIntegerValue creates an integer value
func NewIntegerValue(n int64) Value {
	return Value{Type: ValueTypeInteger, IntegerVal: &n}
}

// NewTimestampValue creates a timestamp value
func NewTimestampValue(t time.Time) Value {
	return Value{Type: ValueTypeTimestamp, TimestampVal: &t}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing}
}

// IsMissing returns true if the value is the missing marker
func (v Value) IsMissing() bool {
	return v.Type == ValueTypeMissing || v.Type == ""
}

// IsString returns true if the value holds text
func (v Value) IsString() bool {
	return v.Type == ValueTypeString && v.StringVal != nil
}

// IsNumeric returns true if the value is usable in numeric computation
func (v Value) IsNumeric() bool {
	return (v.Type == ValueTypeNumeric && v.NumericVal != nil) ||
		(v.Type == ValueTypeInteger && v.IntegerVal != nil)
}

// IsTimestamp returns true if the value holds a timestamp
func (v Value) IsTimestamp() bool {
	return v.Type == ValueTypeTimestamp && v.TimestampVal != nil
}

// AsFloat64 returns the numeric value as float64, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	switch {
	case v.Type == ValueTypeNumeric && v.NumericVal != nil:
		return *v.NumericVal
	case v.Type == ValueTypeInteger && v.IntegerVal != nil:
		return float64(*v.IntegerVal)
	}
	return 0.0
}

// AsString returns the string value, or empty string if not a string
func (v Value) AsString() string {
	if v.StringVal != nil {
		return *v.StringVal
	}
	return ""
}

// Equal reports whether two values are indistinguishable. Missing equals
// missing, which is what exact-duplicate detection needs.
func (v Value) Equal(other Value) bool {
	if v.IsMissing() || other.IsMissing() {
		return v.IsMissing() && other.IsMissing()
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case ValueTypeString:
		return v.AsString() == other.AsString()
	case ValueTypeNumeric, ValueTypeInteger:
		return v.AsFloat64() == other.AsFloat64()
	case ValueTypeTimestamp:
		return v.TimestampVal.Equal(*other.TimestampVal)
	}
	return false
}

// String returns the string representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return fmt.Sprintf("%g", *v.NumericVal)
		}
	case ValueTypeInteger:
		if v.IntegerVal != nil {
			return fmt.Sprintf("%d", *v.IntegerVal)
		}
	case ValueTypeTimestamp:
		if v.TimestampVal != nil {
			return v.TimestampVal.Format(time.RFC3339)
		}
	}
	return "<missing>"
}
