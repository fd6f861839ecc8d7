package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveElement(t *testing.T) {
	tests := []struct {
		name   string
		in     []string
		from   int
		to     int
		want   []string
		wantOK bool
	}{
		{"first to last", []string{"a", "b", "c", "d"}, 0, 3, []string{"b", "c", "d", "a"}, true},
		{"last to first", []string{"a", "b", "c", "d"}, 3, 0, []string{"d", "a", "b", "c"}, true},
		{"forward by one", []string{"a", "b", "c"}, 0, 1, []string{"b", "a", "c"}, true},
		{"backward into middle", []string{"a", "b", "c", "d"}, 3, 1, []string{"a", "d", "b", "c"}, true},
		{"equal indices", []string{"a", "b"}, 1, 1, []string{"a", "b"}, false},
		{"from below range", []string{"a", "b"}, -1, 0, []string{"a", "b"}, false},
		{"to past end", []string{"a", "b"}, 0, 2, []string{"a", "b"}, false},
		{"from past end", []string{"a", "b"}, 2, 0, []string{"a", "b"}, false},
		{"empty", nil, 0, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoveElement(tt.in, tt.from, tt.to)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoveElement_DoesNotModifyInput(t *testing.T) {
	in := []int{1, 2, 3}
	out, ok := MoveElement(in, 0, 2)

	assert.True(t, ok)
	assert.Equal(t, []int{2, 3, 1}, out)
	assert.Equal(t, []int{1, 2, 3}, in)
}
