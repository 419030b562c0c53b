// Command cyclecheck reports whether undirected edge lists contain a cycle.
// It delegates to cli.Execute() from the internal/cli package.
package main

import (
	"github.com/katalvlaran/lvlcycle/internal/cli"
)

func main() {
	cli.Execute()
}
