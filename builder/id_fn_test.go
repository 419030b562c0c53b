package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvlcycle/builder"
	"github.com/katalvlaran/lvlcycle/core"
)

func TestIDFns(t *testing.T) {
	cases := []struct {
		name string
		fn   builder.IDFn
		idx  int
		want core.VertexID
	}{
		{"default zero", builder.DefaultIDFn, 0, 0},
		{"default", builder.DefaultIDFn, 41, 41},
		{"offset", builder.OffsetIDFn(100), 3, 103},
		{"negative offset", builder.OffsetIDFn(-5), 5, 0},
	}
	for _, tc := range cases {
		if got := tc.fn(tc.idx); got != tc.want {
			t.Errorf("%s(%d) = %d; want %d", tc.name, tc.idx, got, tc.want)
		}
	}
}
