package iotaxonomy

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// node is a taxon of a lineage as it is cached on disk.
type node struct {
	ID       int
	ParentID int
	Name     string
	Rank     string
	Division string
}

type taxaSet struct {
	XMLName xml.Name   `xml:"TaxaSet"`
	Taxa    []taxonXML `xml:"Taxon"`
}

type taxonXML struct {
	TaxID          int        `xml:"TaxId"`
	ScientificName string     `xml:"ScientificName"`
	ParentTaxID    int        `xml:"ParentTaxId"`
	Rank           string     `xml:"Rank"`
	Division       string     `xml:"Division"`
	Lineage        []taxonXML `xml:"LineageEx>Taxon"`
}

// fetchLineage downloads a taxon and returns its lineage from the root
// to the taxon itself.
func (t *taxonImporter) fetchLineage(
	ctx context.Context,
	id int,
) ([]node, error) {
	q := url.Values{}
	q.Set("db", "taxonomy")
	q.Set("id", strconv.Itoa(id))
	q.Set("retmode", "xml")
	if t.cfg.APIKey != "" {
		q.Set("api_key", t.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, t.cfg.URL+"?"+q.Encode(), nil,
	)
	if err != nil {
		return nil, FetchError(id, err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, FetchError(id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status %s", resp.Status)
		return nil, FetchError(id, err)
	}

	var set taxaSet
	if err = xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, DecodeError(id, err)
	}
	if len(set.Taxa) == 0 {
		return nil, NotFoundError(id)
	}

	return lineage(set.Taxa[0]), nil
}

// lineage flattens LineageEx and the taxon itself. The first node of a
// lineage gets 0 as a parent, the NCBI root is not stored.
func lineage(tx taxonXML) []node {
	res := make([]node, 0, len(tx.Lineage)+1)
	var parentID int
	for _, v := range tx.Lineage {
		res = append(res, node{
			ID:       v.TaxID,
			ParentID: parentID,
			Name:     v.ScientificName,
			Rank:     v.Rank,
		})
		parentID = v.TaxID
	}

	if tx.ParentTaxID > 0 && len(tx.Lineage) > 0 {
		parentID = tx.ParentTaxID
	}
	res = append(res, node{
		ID:       tx.TaxID,
		ParentID: parentID,
		Name:     tx.ScientificName,
		Rank:     tx.Rank,
		Division: tx.Division,
	})
	return res
}
