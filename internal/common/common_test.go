package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	type sample struct {
		A int
		B string
	}

	tests := map[string]struct {
		val  any
		want any
	}{
		"int":    {val: 42, want: 42},
		"string": {val: "Berlin", want: "Berlin"},
		"struct": {val: sample{A: 1, B: "test"}, want: sample{A: 1, B: "test"}},
		"bool":   {val: true, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ptr := Ptr(tt.val)
			if assert.NotNil(t, ptr) {
				assert.Equal(t, tt.want, *ptr)
			}
		})
	}

	t.Run("distinct-pointers", func(t *testing.T) {
		a, b := Ptr("call-1"), Ptr("call-1")
		assert.NotSame(t, a, b)
	})
}
