// Package dfs provides small helpers over vertex-ID paths used by cycle
// reconstruction and reporting.
package dfs

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcycle/core"
)

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []core.VertexID) []core.VertexID {
	out := make([]core.VertexID, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// JoinPath renders a path as its IDs joined by sep, e.g. "0 → 1 → 5 → 0".
// Time Complexity: O(n).
func JoinPath(path []core.VertexID, sep string) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(int(id))
	}

	return strings.Join(parts, sep)
}
