package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "String field",
			field: Field{Type: StringType, Str: "hello"},
			want:  "hello",
		},
		{
			name:  "Int field",
			field: Field{Type: IntType, Int64: 42},
			want:  "42",
		},
		{
			name:  "Int64 field",
			field: Field{Type: Int64Type, Int64: 1234567890},
			want:  "1234567890",
		},
		{
			name:  "Bool field (true)",
			field: Field{Type: BoolType, Int64: 1},
			want:  "true",
		},
		{
			name:  "Bool field (false)",
			field: Field{Type: BoolType, Int64: 0},
			want:  "false",
		},
		{
			name:  "Float64 field",
			field: Field{Type: Float64Type, Float64: 3.14},
			want:  "3.14",
		},
		{
			name:  "Duration field",
			field: Field{Type: DurationType, Int64: int64(5 * time.Second)},
			want:  "5s",
		},
		{
			name:  "Error field",
			field: Field{Type: ErrorType, Str: "an error occurred"},
			want:  "an error occurred",
		},
		{
			name:  "Time field",
			field: Field{Type: TimeType, Int64: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).UnixNano()},
			want:  "2024-01-02T03:04:05.000Z",
		},
		{
			name:  "Any field",
			field: Field{Type: AnyType, Any: []int{1, 2}},
			want:  "[1 2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestField_Value(t *testing.T) {
	if v := (Field{Type: IntType, Int64: 7}).Value(); v != 7 {
		t.Errorf("Int Value() = %v (%T), want 7", v, v)
	}
	if v := (Field{Type: BoolType, Int64: 1}).Value(); v != true {
		t.Errorf("Bool Value() = %v, want true", v)
	}
	if v := (Field{Type: DurationType, Int64: int64(time.Second)}).Value(); v != time.Second {
		t.Errorf("Duration Value() = %v, want 1s", v)
	}
	if v := (Field{Type: AnyType, Any: "x"}).Value(); v != "x" {
		t.Errorf("Any Value() = %v, want x", v)
	}
}

func TestErrorField(t *testing.T) {
	f := ErrorField("cause", errors.New("boom"))
	if f.Key != "cause" || f.Type != ErrorType || f.Str != "boom" {
		t.Errorf("ErrorField() = %+v", f)
	}
	if got := ErrorField("cause", nil).Str; got != "" {
		t.Errorf("ErrorField(nil).Str = %q, want empty", got)
	}
}

func BenchmarkFieldStringValue(b *testing.B) {
	fields := []Field{
		{Type: StringType, Str: "test"},
		{Type: IntType, Int64: 42},
		{Type: BoolType, Int64: 1},
		{Type: Float64Type, Float64: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = f.StringValue()
		}
	}
}
