// Package taxonomy holds the canonical category tags used to classify
// addressing records and the synonym rules that map free-text motif labels
// onto them. The tag set is configuration, not code: callers may load their
// own table, the compiled-in default reflects the standard Plan Adressage
// motifs.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical tags of the default taxonomy.
const (
	TagOK        = "OK"
	TagNOK       = "NOK"
	TagUPROK     = "UPR OK"
	TagUPRNOK    = "UPR NOK"
	TagRAS       = "RAS"
	TagADCree    = "AD CREE"
	TagAAnalyser = "A ANALYSER"
)

// Rule maps one canonical tag to the label variants observed in the field.
// Synonyms match whole labels only. Substrings tolerate legacy free-text
// labels that embed the motif inside a longer phrase.
type Rule struct {
	Tag        string   `yaml:"tag" json:"tag"`
	Synonyms   []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
	Substrings []string `yaml:"substrings,omitempty" json:"substrings,omitempty"`
}

// Taxonomy is a compiled synonym table. Build one with New; the zero value
// maps nothing.
type Taxonomy struct {
	rules []Rule
	tags  []string

	exact map[string]string // canonical label -> tag
	loose []loosePattern    // longest pattern first
}

type loosePattern struct {
	pattern string
	tag     string
}

// New compiles a rule list into a Taxonomy. Rule order fixes the tag
// universe order. Substring patterns are matched longest-first across all
// rules, so a compound motif ("UPR NOK") can never be absorbed by a shorter
// one ("NOK") regardless of how the rules were listed.
func New(rules []Rule) (*Taxonomy, error) {
	t := &Taxonomy{
		rules: rules,
		exact: make(map[string]string),
	}
	seen := make(map[string]bool)
	for _, r := range rules {
		tag := canonicalize(r.Tag)
		if tag == "" {
			return nil, fmt.Errorf("taxonomy rule with empty tag")
		}
		if seen[tag] {
			return nil, fmt.Errorf("duplicate taxonomy tag %q", tag)
		}
		seen[tag] = true
		t.tags = append(t.tags, tag)

		// The tag itself always matches exactly.
		t.exact[tag] = tag
		for _, s := range r.Synonyms {
			s = canonicalize(s)
			if s == "" {
				continue
			}
			if prev, dup := t.exact[s]; dup && prev != tag {
				return nil, fmt.Errorf("synonym %q claimed by both %q and %q", s, prev, tag)
			}
			t.exact[s] = tag
		}
		for _, s := range r.Substrings {
			s = canonicalize(s)
			if s == "" {
				continue
			}
			t.loose = append(t.loose, loosePattern{pattern: s, tag: tag})
		}
	}
	sort.SliceStable(t.loose, func(i, j int) bool {
		return len(t.loose[i].pattern) > len(t.loose[j].pattern)
	})
	return t, nil
}

// MustNew is New for compiled-in tables.
func MustNew(rules []Rule) *Taxonomy {
	t, err := New(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Tags returns the canonical tag universe in rule order.
func (t *Taxonomy) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// Canonical maps a free-text label to its canonical tag. The second return
// is false when no rule matched; the first then holds the canonicalized
// input so the caller can keep counting it.
//
// Exact matches win over substring matches, and longer substring patterns
// win over shorter ones.
func (t *Taxonomy) Canonical(label string) (string, bool) {
	c := canonicalize(label)
	if c == "" {
		return "", false
	}
	if tag, ok := t.exact[c]; ok {
		return tag, true
	}
	for _, lp := range t.loose {
		if strings.Contains(c, lp.pattern) {
			return lp.tag, true
		}
	}
	return c, false
}

// canonicalize trims, uppercases and collapses inner whitespace.
func canonicalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// Default returns the standard Plan Adressage motif table. The UPR rules
// carry their own synonyms so a "UPR NOK" label resolves to the UPR tag,
// never to plain NOK.
func Default() *Taxonomy {
	return MustNew([]Rule{
		{Tag: TagUPROK, Synonyms: []string{"UPR OK", "OK UPR"}, Substrings: []string{"UPR OK"}},
		{Tag: TagUPRNOK, Synonyms: []string{"UPR NOK", "UPR NON OK", "NOK UPR"}, Substrings: []string{"UPR NOK"}},
		{Tag: TagOK, Synonyms: []string{"OK", "CONFORME"}},
		{Tag: TagNOK, Synonyms: []string{"NOK", "NON OK", "NON CONFORME"}, Substrings: []string{"NOK"}},
		{Tag: TagRAS, Synonyms: []string{"RAS", "RIEN A SIGNALER"}},
		{Tag: TagADCree, Synonyms: []string{"AD CREE", "ADRESSE CREEE", "AD CREEE"}},
		{Tag: TagAAnalyser, Synonyms: []string{"A ANALYSER", "A TRAITER", "EN ATTENTE"}},
	})
}
