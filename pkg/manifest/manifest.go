// Package manifest reads lists of accessions to import from YAML:
//
//	studies:
//	  - ERP001736
//	analyses:
//	  - ERZ000001
//	  - ERZ000002
package manifest

import (
	"regexp"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/srameta/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	studyRe    = regexp.MustCompile(`^([EDS]RP\d{6,}|PRJ[EDN][A-Z]\d+)$`)
	analysisRe = regexp.MustCompile(`^[EDS]RZ\d{6,}$`)
)

// Manifest is a list of studies and analyses to import.
type Manifest struct {
	Studies  []string `yaml:"studies"`
	Analyses []string `yaml:"analyses"`
}

// Parse decodes YAML manifest. Accessions are trimmed, empty and
// duplicate entries are removed. Accessions of unusual shape are kept,
// but a warning is shown.
func Parse(data []byte) (*Manifest, error) {
	var res Manifest
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, ManifestError(err)
	}

	res.Studies = clean(res.Studies)
	res.Analyses = clean(res.Analyses)

	check("study", studyRe, res.Studies)
	check("analysis", analysisRe, res.Analyses)

	return &res, nil
}

// Empty is true when manifest has no accessions.
func (m *Manifest) Empty() bool {
	return len(m.Studies) == 0 && len(m.Analyses) == 0
}

// Options converts the manifest to import configuration options.
// Accessions given earlier (for example by flags) are kept in front.
func (m *Manifest) Options(cfg *config.Config) []config.Option {
	return []config.Option{
		config.OptImportStudyAccessions(
			slices.Concat(cfg.Import.StudyAccessions, m.Studies),
		),
		config.OptImportAnalysisAccessions(
			slices.Concat(cfg.Import.AnalysisAccessions, m.Analyses),
		),
	}
}

func clean(ss []string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(res, v) {
			continue
		}
		res = append(res, v)
	}
	return res
}

func check(entity string, re *regexp.Regexp, accs []string) {
	for _, v := range accs {
		if !re.MatchString(v) {
			gn.Warn("Unusual %s accession <em>%s</em>", entity, v)
		}
	}
}
