package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write serializes p. Comments come first, then the problem, terminal and
// arc lines in that order.
func Write(w io.Writer, p *Problem) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	bw := bufio.NewWriter(w)
	for _, c := range p.Comments {
		fmt.Fprintf(bw, "c %s\n", c)
	}
	fmt.Fprintf(bw, "p max %d %d\n", p.Nodes, len(p.Arcs))
	fmt.Fprintf(bw, "n %d s\n", p.Source)
	fmt.Fprintf(bw, "n %d t\n", p.Sink)
	for _, a := range p.Arcs {
		fmt.Fprintf(bw, "a %d %d %s\n", a.From, a.To, strconv.FormatFloat(a.Capacity, 'g', -1, 64))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}
