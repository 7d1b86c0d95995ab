// Package cricinfo fetches raw statistics tables from the ESPNcricinfo
// Statsguru engine. It owns request building, pagination, and HTML
// table extraction; cleaning happens downstream in cricclean.
//
// Statsguru's print view is scraped page by page until the engine
// serves an empty table, bounded by a hard page ceiling so the loop
// terminates even if the end marker never appears.
package cricinfo

import (
	"fmt"
	"strings"

	"github.com/cricbase/cricbase-data/internal/countries"
	"github.com/cricbase/cricbase-data/internal/cricclean"
)

// Match types in Statsguru class order.
const (
	MatchTypeTest = "test"
	MatchTypeODI  = "odi"
	MatchTypeT20  = "t20"
)

var matchTypes = []string{MatchTypeTest, MatchTypeODI, MatchTypeT20}

// Params selects which Statsguru dataset to fetch. Country is an
// optional filter, resolved fuzzily against the competition's team
// table.
type Params struct {
	MatchType string
	Sex       string
	Activity  cricclean.Activity
	View      cricclean.View
	Country   string
}

// normalize validates every enum parameter before any I/O happens.
func (p *Params) normalize() error {
	p.MatchType = strings.ToLower(p.MatchType)
	p.Sex = strings.ToLower(p.Sex)

	if p.matchClass() == 0 {
		return fmt.Errorf("matchtype must be %q, %q, or %q, got %q: %w",
			MatchTypeTest, MatchTypeODI, MatchTypeT20, p.MatchType, cricclean.ErrInvalidArgument)
	}
	if p.Sex != string(countries.Men) && p.Sex != string(countries.Women) {
		return fmt.Errorf("sex must be %q or %q, got %q: %w",
			countries.Men, countries.Women, p.Sex, cricclean.ErrInvalidArgument)
	}

	var err error
	if p.Activity, err = cricclean.ParseActivity(string(p.Activity)); err != nil {
		return err
	}
	if p.View, err = cricclean.ParseView(string(p.View)); err != nil {
		return err
	}
	return nil
}

// matchClass computes the Statsguru class number: test/odi/t20 are
// 1/2/3 for men and 8/9/10 for women. Returns 0 for unknown types.
func (p Params) matchClass() int {
	for i, mt := range matchTypes {
		if p.MatchType == mt {
			class := i + 1
			if p.Sex == string(countries.Women) {
				class += 7
			}
			return class
		}
	}
	return 0
}

// teamFilter resolves the optional country filter to a ";team=N" URL
// segment. An empty country means all teams.
func (p Params) teamFilter() (string, error) {
	if p.Country == "" {
		return "", nil
	}
	_, code, err := countries.Resolve(p.Country, countries.Competition(p.Sex), countries.DefaultCutoff)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(";team=%d", code), nil
}
