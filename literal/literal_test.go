package literal

import (
	"errors"
	"testing"

	"github.com/manokara/bencedit/ir"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{"integer", "42", ir.FromInt(42)},
		{"negative integer", "-7", ir.FromInt(-7)},
		{"string", `"hello"`, ir.FromString("hello")},
		{"empty array", "[]", ir.NewList()},
		{"empty object", "{}", ir.NewDict()},
		{"nested", `{"a": [1, "two"], "b": {"c": 3}}`, ir.FromMap(map[string]*ir.Node{
			"a": ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two")}),
			"b": ir.FromMap(map[string]*ir.Node{"c": ir.FromInt(3)}),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Convert(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"null", "null", ErrUnrepresentable},
		{"nested null", `{"a": null}`, ErrUnrepresentable},
		{"float", "1.5", ErrUnrepresentable},
		{"exponent", "1e3", ErrUnrepresentable},
		{"bool", "true", ErrUnrepresentable},
		{"out of range", "92233720368547758080", ErrUnrepresentable},
		{"bad json", "{", ErrSyntax},
		{"trailing data", "1 2", ErrSyntax},
		{"empty key", `{"": 1}`, ir.ErrEmptyKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Convert(%q) = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestConvertEmptyKeyPolicy(t *testing.T) {
	got, err := Convert(`{"": 1}`, AllowEmptyKeys(true))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if got.Get("") == nil {
		t.Error("empty key missing from dict")
	}
}
