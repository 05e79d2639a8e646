package bmset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		set      Set
		expected string
	}{
		{"Empty", NewDefault(), "BitmapSet {}"},
		{"Single", Of(1, 7), "BitmapSet {7}"},
		{"Mixed", Of(32, 255, 8, 0, 2, 1), "BitmapSet {0, 1, 2, 8, 255}"},
		{"SmallFull", New(1).Complement(), "BitmapSet {0, 1, 2, 3, 4, 5, 6, 7}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.set.String())
			require.Equal(t, tt.expected, fmt.Sprint(tt.set))
		})
	}
}
