package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses a DIMACS max-flow problem. The arc count of the problem line
// must match the number of arc lines, and exactly one source and one sink
// must be declared.
func Read(r io.Reader) (*Problem, error) {
	var (
		p        *Problem
		declared int
		line     int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "c":
			if p == nil {
				p = &Problem{}
			}
			p.Comments = append(p.Comments, strings.TrimSpace(strings.TrimPrefix(text, "c")))

		case "p":
			if p != nil && p.Nodes > 0 {
				return nil, &SyntaxError{Line: line, Msg: "duplicate problem line"}
			}
			if len(fields) != 4 || fields[1] != "max" {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("want \"p max <nodes> <arcs>\", got %q", text)}
			}
			nodes, err := parseCount(fields[2])
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: "node count: " + err.Error()}
			}
			if declared, err = parseCount(fields[3]); err != nil {
				return nil, &SyntaxError{Line: line, Msg: "arc count: " + err.Error()}
			}
			if p == nil {
				p = &Problem{}
			}
			p.Nodes = nodes
			p.Arcs = make([]Arc, 0, declared)

		case "n":
			if p == nil || p.Nodes == 0 {
				return nil, &SyntaxError{Line: line, Msg: "node line before problem line"}
			}
			if len(fields) != 3 {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("want \"n <id> s|t\", got %q", text)}
			}
			id, err := parseNode(fields[1], p.Nodes)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: err.Error()}
			}
			switch fields[2] {
			case "s":
				if p.Source != 0 {
					return nil, &SyntaxError{Line: line, Msg: "second source"}
				}
				p.Source = id
			case "t":
				if p.Sink != 0 {
					return nil, &SyntaxError{Line: line, Msg: "second sink"}
				}
				p.Sink = id
			default:
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("unrecognized node kind %q", fields[2])}
			}

		case "a":
			if p == nil || p.Nodes == 0 {
				return nil, &SyntaxError{Line: line, Msg: "arc line before problem line"}
			}
			if len(fields) != 4 {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("want \"a <from> <to> <capacity>\", got %q", text)}
			}
			from, err := parseNode(fields[1], p.Nodes)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: err.Error()}
			}
			to, err := parseNode(fields[2], p.Nodes)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: err.Error()}
			}
			c, err := strconv.ParseFloat(fields[3], 64)
			if err != nil || c < 0 {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("bad capacity %q", fields[3])}
			}
			p.Arcs = append(p.Arcs, Arc{From: from, To: to, Capacity: c})

		default:
			return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("unknown data %q", text)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	switch {
	case p == nil || p.Nodes == 0:
		return nil, &SyntaxError{Msg: "missing problem line"}
	case p.Source == 0:
		return nil, &SyntaxError{Msg: "missing source node"}
	case p.Sink == 0:
		return nil, &SyntaxError{Msg: "missing sink node"}
	case len(p.Arcs) != declared:
		return nil, &SyntaxError{Msg: fmt.Sprintf("problem line declares %d arcs, found %d", declared, len(p.Arcs))}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return p, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func parseNode(s string, nodes int) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad node id %q", s)
	}
	if id < 1 || id > nodes {
		return 0, fmt.Errorf("node %d outside [1,%d]", id, nodes)
	}
	return id, nil
}
