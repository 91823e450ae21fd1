// SPDX-License-Identifier: MIT
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/crowdtsp/tsp"
)

// MaxHeaderTokens bounds the number of tokens scanned before the coordinate
// section. Exceeding it is reported as ErrMissingSection.
const MaxHeaderTokens = 10000

const (
	keyName         = "NAME"
	keyDimension    = "DIMENSION"
	keyCoordSection = "NODE_COORD_SECTION"

	// maxTokenSize caps a single whitespace-delimited token.
	maxTokenSize = 1 << 20

	// maxPrealloc caps the city slice capacity taken from DIMENSION up front.
	maxPrealloc = 1 << 16
)

// Instance is a parsed coordinate file.
type Instance struct {
	Name      string     // NAME header value, empty when absent
	Dimension int        // declared city count
	Cities    []tsp.City // exactly Dimension cities in file order
}

// Table builds the distance table for the instance.
func (in *Instance) Table() (*tsp.DistanceTable, error) {
	return tsp.NewDistanceTable(in.Cities)
}

// malformed wraps a precise cause together with ErrMalformedInput.
func malformed(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedInput, cause, fmt.Sprintf(format, args...))
}

// Read opens path and parses it. A missing or unreadable file is
// ErrMalformedInput (the underlying *fs.PathError is wrapped as well).
func Read(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, malformed(err, "open %q", path)
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// tokenizer yields whitespace-delimited tokens and counts them.
type tokenizer struct {
	sc    *bufio.Scanner
	count int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next returns the next token; ok is false on EOF. A read error is returned
// as ErrMalformedInput.
func (tk *tokenizer) next() (tok string, ok bool, err error) {
	if !tk.sc.Scan() {
		if err = tk.sc.Err(); err != nil {
			return "", false, malformed(err, "read after %d tokens", tk.count)
		}
		return "", false, nil
	}
	tk.count++

	return tk.sc.Text(), true, nil
}

// headerValue extracts the value of a "KEY: value" header in any of the
// three spellings "KEY: v", "KEY : v" and "KEY:v", with tok holding the part
// already read. It consumes tokens as needed.
func (tk *tokenizer) headerValue(tok, key string) (string, error) {
	rest := strings.TrimPrefix(tok, key)
	rest = strings.TrimPrefix(rest, ":")
	if rest != "" {
		return rest, nil
	}

	v, ok, err := tk.next()
	if err != nil {
		return "", err
	}
	if ok && v == ":" && !strings.HasSuffix(tok, ":") {
		v, ok, err = tk.next()
		if err != nil {
			return "", err
		}
	}
	if !ok {
		return "", malformed(ErrMissingSection, "no value after %s", key)
	}

	return v, nil
}

// isKey reports whether tok opens the header named key.
func isKey(tok, key string) bool {
	if tok == key {
		return true
	}

	return strings.HasPrefix(tok, key+":")
}

// Parse reads one instance from r.
//
// Stage 1 scans header tokens for DIMENSION (and NAME), Stage 2 scans for
// NODE_COORD_SECTION, Stage 3 reads exactly DIMENSION "<id> <x> <y>" triples.
// Stages 1 and 2 together read at most MaxHeaderTokens tokens.
//
// Complexity: O(size of r) time, O(N) space.
func Parse(r io.Reader) (*Instance, error) {
	var (
		tk  = newTokenizer(r)
		in  = &Instance{}
		tok string
		ok  bool
		err error
		v   string
	)

	// Stage 1: DIMENSION.
	for in.Dimension == 0 {
		if tok, ok, err = tk.next(); err != nil {
			return nil, err
		}
		if !ok || tk.count > MaxHeaderTokens {
			return nil, malformed(ErrMissingSection, "%s not found", keyDimension)
		}
		switch {
		case isKey(tok, keyDimension):
			if v, err = tk.headerValue(tok, keyDimension); err != nil {
				return nil, err
			}
			n, convErr := strconv.Atoi(v)
			if convErr != nil || n <= 0 {
				return nil, malformed(ErrBadToken, "%s %q", keyDimension, v)
			}
			in.Dimension = n
		case isKey(tok, keyName):
			if in.Name, err = tk.headerValue(tok, keyName); err != nil {
				return nil, err
			}
		}
	}

	// Stage 2: NODE_COORD_SECTION.
	for {
		if tok, ok, err = tk.next(); err != nil {
			return nil, err
		}
		if !ok || tk.count > MaxHeaderTokens {
			return nil, malformed(ErrMissingSection, "%s not found", keyCoordSection)
		}
		if tok == keyCoordSection || tok == keyCoordSection+":" {
			break
		}
	}

	// Stage 3: coordinates.
	var (
		capHint = in.Dimension
		seen    map[int]struct{}
		c       tsp.City
		k       int
	)
	if capHint > maxPrealloc {
		capHint = maxPrealloc
	}
	in.Cities = make([]tsp.City, 0, capHint)
	seen = make(map[int]struct{}, capHint)
	for k = 0; k < in.Dimension; k++ {
		if c, err = tk.city(k); err != nil {
			return nil, err
		}
		if c.ID <= 0 {
			return nil, malformed(tsp.ErrInvalidCityID, "record %d: id %d", k+1, c.ID)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, malformed(tsp.ErrDuplicateCity, "record %d: id %d", k+1, c.ID)
		}
		seen[c.ID] = struct{}{}
		in.Cities = append(in.Cities, c)
	}

	return in, nil
}

// city reads one "<id> <x> <y>" record; k is its zero-based position.
func (tk *tokenizer) city(k int) (tsp.City, error) {
	var fields [3]string
	var (
		i   int
		ok  bool
		err error
	)
	for i = range fields {
		if fields[i], ok, err = tk.next(); err != nil {
			return tsp.City{}, err
		}
		if !ok {
			return tsp.City{}, malformed(ErrShortSection, "record %d of coordinates truncated", k+1)
		}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.City{}, malformed(ErrBadToken, "record %d: id %q", k+1, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return tsp.City{}, malformed(ErrBadToken, "record %d: x %q", k+1, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return tsp.City{}, malformed(ErrBadToken, "record %d: y %q", k+1, fields[2])
	}

	return tsp.City{ID: id, X: x, Y: y}, nil
}
