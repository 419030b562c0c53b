package cycle

import (
	"fmt"
	"strings"
)

// Strategy selects the traversal used to detect a cycle.
type Strategy string

const (
	StrategyDFS          Strategy = "dfs"
	StrategyDFSIterative Strategy = "dfs-iterative"
	StrategyBFS          Strategy = "bfs"
	StrategyUnionFind    Strategy = "union-find"
)

// Strategies lists every supported strategy, default first.
func Strategies() []Strategy {
	return []Strategy{StrategyDFS, StrategyDFSIterative, StrategyBFS, StrategyUnionFind}
}

// ParseStrategy resolves a case-insensitive strategy name; "" means StrategyDFS.
func ParseStrategy(s string) (Strategy, error) {
	name := Strategy(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return StrategyDFS, nil
	}
	if err := name.Validate(); err != nil {
		return "", err
	}

	return name, nil
}

// Validate returns ErrUnknownStrategy for an unsupported value.
func (s Strategy) Validate() error {
	for _, known := range Strategies() {
		if s == known {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
}

func (s Strategy) String() string { return string(s) }
