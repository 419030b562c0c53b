package cycle

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvlcycle/core"
)

// Fingerprint hashes the topology of g: its vertex IDs and its canonical edges.
// Graphs built from edge lists that differ only in edge order, edge orientation,
// repeated edges or repeated self-loops get the same fingerprint.
func Fingerprint(g *core.UndirectedGraph) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 16)

	vertices := g.Vertices()
	buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(len(vertices)))
	_, _ = d.Write(buf)
	for _, v := range vertices {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(v.ID()))
		_, _ = d.Write(buf)
	}
	for _, e := range g.Edges() {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(e.Source))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.Target))
		_, _ = d.Write(buf)
	}

	return d.Sum64()
}
