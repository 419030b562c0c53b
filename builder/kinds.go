package builder

import (
	"fmt"
	"sort"
	"strings"
)

// kindFactories maps a topology name to a one-parameter factory.
// Grid(n) is square; BinaryTree(n) takes n as the depth.
var kindFactories = map[string]func(n int) Constructor{
	"path":        Path,
	"star":        Star,
	"cycle":       Cycle,
	"wheel":       Wheel,
	"complete":    Complete,
	"grid":        func(n int) Constructor { return Grid(n, n) },
	"binary-tree": BinaryTree,
	"random-tree": RandomTree,
}

// ByName resolves a case-insensitive topology name to its Constructor.
func ByName(kind string, n int) (Constructor, error) {
	factory, ok := kindFactories[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w (known: %s)", kind, ErrUnknownKind, strings.Join(Kinds(), ", "))
	}

	return factory(n), nil
}

// Kinds lists the names accepted by ByName, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kindFactories))
	for name := range kindFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
