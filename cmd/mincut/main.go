// Command mincut solves and generates DIMACS maximum-flow instances with the
// graphcut and gridcut engines.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

// globalOptions are shared by every sub-command. Values left at their zero
// value defer to the configuration file and environment.
type globalOptions struct {
	Config string `long:"config" short:"c" description:"YAML configuration file (default: ./mincut.yaml if present)"`
	Log    struct {
		Level  string `long:"level" description:"Log level: trace, debug, info, warn, error"`
		Format string `long:"format" choice:"console" choice:"json" description:"Log output format"`
		File   string `long:"file" description:"Write logs to this file, rotated"`
	} `group:"Logging" namespace:"log"`
}

var global globalOptions

func newParser() *flags.Parser {
	parser := flags.NewParser(&global, flags.Default)
	parser.LongDescription = `mincut computes minimum s/t cuts of DIMACS max-flow problems.

Settings are layered: built-in defaults, then ./mincut.yaml (or --config),
then MINCUT_* environment variables, then command-line flags.
`
	mustAddCmd(parser.Command, "solve", "Solve a DIMACS max-flow problem", `
Read a DIMACS "p max" problem and compute its maximum flow and minimum cut.

The tree engine accepts any graph. The grid engine requires the inner nodes,
in id order, to form a --width × --height row-major 4-connected lattice.

Output lists the flow value followed by one "n <id> s|t" line per inner node.
`, &cmdSolve{})
	mustAddCmd(parser.Command, "generate", "Generate a DIMACS max-flow problem", `
Write a reproducible instance to --output (stdout by default).

Kinds:
segmentation: --width × --height 4-connected labeling lattice
sparse:       --nodes inner nodes with arc probability --prob
chain:        a single path over --nodes inner nodes
`, &cmdGenerate{})
	return parser
}

func mustAddCmd(cmd *flags.Command, name, short, long string, data interface{}) {
	if _, err := cmd.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

func main() {
	if _, err := newParser().Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
