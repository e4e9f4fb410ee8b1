package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7))
	require.Equal(t, -1, FindIndex([]string{"a"}, "b"))
	require.Equal(t, -1, FindIndex([]int(nil), 0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, Clamp(-3, 0, 6))
	require.Equal(t, 6, Clamp(9, 0, 6))
	require.Equal(t, 4, Clamp(4, 0, 6))
}
