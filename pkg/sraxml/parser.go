package sraxml

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Parser extracts a record of type T from raw XML. It accepts a bare
// element, a _SET wrapper with many elements, or any other wrapper
// around them.
type Parser[T any] struct {
	tag       string
	accession func(*T) string
}

// NewStudyParser creates a parser of STUDY records.
func NewStudyParser() *Parser[Study] {
	return &Parser[Study]{
		tag:       "STUDY",
		accession: func(s *Study) string { return s.Accession },
	}
}

// NewAnalysisParser creates a parser of ANALYSIS records.
func NewAnalysisParser() *Parser[Analysis] {
	return &Parser[Analysis]{
		tag:       "ANALYSIS",
		accession: func(a *Analysis) string { return a.Accession },
	}
}

// NewSampleParser creates a parser of SAMPLE records.
func NewSampleParser() *Parser[Sample] {
	return &Parser[Sample]{
		tag:       "SAMPLE",
		accession: func(s *Sample) string { return s.Accession },
	}
}

// Parse returns the record with accession equal to id. If there is no
// such record, but the XML has exactly one element, that element is
// returned.
func (p *Parser[T]) Parse(raw, id string) (*T, error) {
	recs, err := p.decodeAll(raw)
	if err != nil {
		return nil, ParseError(p.tag, id, err)
	}

	switch len(recs) {
	case 0:
		return nil, RecordNotFoundError(p.tag, id)
	case 1:
		return recs[0], nil
	}

	for _, v := range recs {
		if p.accession(v) == id {
			return v, nil
		}
	}
	return nil, AmbiguousRecordError(p.tag, id, len(recs))
}

func (p *Parser[T]) decodeAll(raw string) ([]*T, error) {
	var res []*T
	dec := xml.NewDecoder(strings.NewReader(raw))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != p.tag {
			continue
		}

		var rec T
		if err = dec.DecodeElement(&rec, &se); err != nil {
			return nil, err
		}
		res = append(res, &rec)
	}
}
