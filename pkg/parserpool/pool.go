// Package parserpool provides a pool of gnparser instances for concurrent
// name parsing. Parsing is computation, not I/O, so the package is pure.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides gnparser instances for concurrent parsing of taxon names.
// Botanical and zoological codes have separate parsers.
type Pool interface {
	// Parse parses a scientific name using the given nomenclatural code.
	// It is safe for concurrent use.
	Parse(name string, code nomcode.Code) (parsed.Parsed, error)

	// Canonical returns the simple canonical form of a name, or an
	// empty string if the name cannot be parsed.
	Canonical(name string, code nomcode.Code) string

	// Close shuts down the parser pools.
	Close()
}

type pool struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
}

// NewPool creates a new parser pool with the specified number of parsers
// per nomenclatural code. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}

	newCh := func(code nomcode.Code) chan gnparser.GNparser {
		cfg := gnparser.NewConfig(
			gnparser.OptCode(code),
			gnparser.OptWithDetails(true),
		)
		return gnparser.NewPool(cfg, jobsNum)
	}

	return &pool{
		botanicalCh:  newCh(nomcode.Botanical),
		zoologicalCh: newCh(nomcode.Zoological),
	}
}

func (p *pool) Parse(name string, code nomcode.Code) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf("unsupported nomenclatural code: %v", code)
	}

	// blocks if all parsers are busy
	parser := <-ch
	res := parser.ParseName(name)
	ch <- parser

	return res, nil
}

func (p *pool) Canonical(name string, code nomcode.Code) string {
	res, err := p.Parse(name, code)
	if err != nil || !res.Parsed || res.Canonical == nil {
		return ""
	}
	return res.Canonical.Simple
}

// Close closes both pools and drains remaining parsers.
func (p *pool) Close() {
	for _, ch := range []chan gnparser.GNparser{p.botanicalCh, p.zoologicalCh} {
		if ch == nil {
			continue
		}
		close(ch)
		for range ch {
		}
	}
}
