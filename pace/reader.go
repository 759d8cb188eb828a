// Package pace reads and writes the PACE 2018 Steiner Tree `.gr` instance
// format: spec.md §6, grounded on the original submission's read.hpp/write.hpp.
package pace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goderik01/PACE2018/stpggraph"
)

var (
	errBadFormat = errors.New("pace: bad file format")
)

// Reader reads a single STPG instance in PACE .gr format from an underlying
// io.Reader. Grounded on gonum's mmarket.Reader: a thin bufio.Scanner wrapper
// around a line-oriented, whitespace-fielded text format.
type Reader struct {
	s *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

func (r *Reader) scan() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return r.s.Text(), nil
}

// Read parses one instance: "SECTION Graph" / "Nodes n" / "Edges m" / m
// lines "E u v w" / "END", then "SECTION Terminals" / "Terminals t" / t
// lines "T v" / "END"; a trailing "EOF" line is neither read nor checked.
// Vertex IDs on the wire are 1-based;
// Read converts them to the 0-based stpggraph.Vertex numbering internally.
//
// Unlike the original's graph_from_file, which skips forward to "SECTION
// Graph\n" with no validation, Read checks every section header and field
// count explicitly and returns errBadFormat on mismatch rather than reading
// garbage silently.
func (r *Reader) Read() (*stpggraph.Graph, error) {
	if err := r.expect("SECTION Graph"); err != nil {
		return nil, err
	}

	nverts, err := r.readCount("Nodes")
	if err != nil {
		return nil, err
	}
	nedges, err := r.readCount("Edges")
	if err != nil {
		return nil, err
	}

	g := stpggraph.New(nverts)

	for i := 0; i < nedges; i++ {
		line, err := r.scan()
		if err != nil {
			return nil, err
		}
		var tag string
		var u, v int
		var w int64
		n, err := fmt.Sscan(line, &tag, &u, &v, &w)
		if err != nil || n != 4 || tag != "E" {
			return nil, errBadFormat
		}
		if u < 1 || u > nverts || v < 1 || v > nverts {
			return nil, errBadFormat
		}
		su, sv := stpggraph.Vertex(u-1), stpggraph.Vertex(v-1)
		g.AddOriginalEdge(su, sv, stpggraph.Weight(w), su, sv)
	}

	if err := r.expect("END"); err != nil {
		return nil, err
	}

	if err := r.skipBlankAndExpect("SECTION Terminals"); err != nil {
		return nil, err
	}
	nterm, err := r.readCount("Terminals")
	if err != nil {
		return nil, err
	}
	for i := 0; i < nterm; i++ {
		line, err := r.scan()
		if err != nil {
			return nil, err
		}
		var tag string
		var t int
		n, err := fmt.Sscan(line, &tag, &t)
		if err != nil || n != 2 || tag != "T" {
			return nil, errBadFormat
		}
		if t < 1 || t > nverts {
			return nil, errBadFormat
		}
		g.MarkTerminal(stpggraph.Vertex(t - 1))
	}

	return g, r.expect("END")
}

func (r *Reader) expect(want string) error {
	line, err := r.scan()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != want {
		return errBadFormat
	}
	return nil
}

// skipBlankAndExpect skips blank lines (the writer emits one between
// sections) before requiring want, mirroring the original read_terminals'
// loop that scans forward to "SECTION Terminals\n" regardless of what
// precedes it.
func (r *Reader) skipBlankAndExpect(want string) error {
	for {
		line, err := r.scan()
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line != want {
			return errBadFormat
		}
		return nil
	}
}

func (r *Reader) readCount(tag string) (int, error) {
	line, err := r.scan()
	if err != nil {
		return 0, err
	}
	var gotTag string
	var n int
	cnt, err := fmt.Sscan(line, &gotTag, &n)
	if err != nil || cnt != 2 || gotTag != tag {
		return 0, errBadFormat
	}
	return n, nil
}
