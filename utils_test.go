package tableview

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpacePascalCase(t *testing.T) {
	tests := []struct {
		testName string
		name     string
		want     string
	}{
		{testName: "", name: "", want: ""},
		{testName: "HelloWorld", name: "HelloWorld", want: "Hello World"},
		{testName: "_Hello_World", name: "_Hello_World", want: "Hello World"},
		{testName: "helloWorld", name: "helloWorld", want: "hello World"},
		{testName: "helloWorld_", name: "helloWorld_", want: "hello World"},
		{testName: "ThisHasMoreSpacesForSure", name: "ThisHasMoreSpacesForSure", want: "This Has More Spaces For Sure"},
		{testName: "ThisHasMore_Spaces__ForSure", name: "ThisHasMore_Spaces__ForSure", want: "This Has More Spaces For Sure"},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			if got := SpacePascalCase(tt.name); got != tt.want {
				t.Errorf("SpacePascalCase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueIsNil(t *testing.T) {
	var (
		nilPtr   *int
		nilSlice []string
		nilIface error
	)
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "nil pointer", value: nilPtr, want: true},
		{name: "nil slice", value: nilSlice, want: true},
		{name: "nil interface", value: nilIface, want: true},
		{name: "empty struct", value: struct{}{}, want: true},
		{name: "zero int", value: 0, want: false},
		{name: "empty string", value: "", want: false},
		{name: "empty slice", value: []string{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValueIsNil(reflect.ValueOf(tt.value)))
		})
	}
}

func TestStructFieldValues(t *testing.T) {
	type Embedded struct{ B int }
	type row struct {
		A int
		Embedded
		c int
		D string
	}
	values := StructFieldValues(reflect.ValueOf(&row{A: 1, Embedded: Embedded{B: 2}, c: 3, D: "d"}))
	got := make([]any, len(values))
	for i, v := range values {
		got[i] = v.Interface()
	}
	require.Equal(t, []any{1, 2, "d"}, got)
	require.Len(t, StructFieldTypes(reflect.TypeOf(row{})), 3)
}
