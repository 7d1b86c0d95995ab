package cricclean

import (
	"math"
	"regexp"
	"strings"

	"github.com/cricbase/cricbase-data/internal/countries"
	"github.com/cricbase/cricbase-data/internal/frame"
)

// Clean transforms a raw scraped table for the given activity into the
// canonical record schema. The returned View reports whether the input
// was a career or innings table, detected from the columns.
//
// Cleaning either completes fully or fails; rows are never silently
// dropped to recover from an error. Non-finite averages and rates
// (division by zero) are not errors and propagate into the output.
func Clean(f *frame.Frame, activity Activity) (*frame.Frame, View, error) {
	replaceSentinel(f)
	f.LowerNames()
	f.Rename(renameTable(activity))

	view := Innings
	if f.Has("matches") {
		view = Career
	}

	for _, name := range requiredColumns(activity, view) {
		if !f.Has(name) {
			return nil, view, &frame.SchemaError{Column: name}
		}
	}

	var err error
	switch activity {
	case Batting:
		if view == Career {
			err = cleanBattingCareer(f)
		} else {
			err = cleanBattingInnings(f)
		}
	case Bowling:
		err = cleanBowling(f, view)
	case Fielding:
		err = cleanFielding(f)
	}
	if err != nil {
		return nil, view, err
	}

	extractPlayerCountry(f)
	return f.Select(columnOrder(activity, view)), view, nil
}

// --------------------------------------------------------------------------
// Batting
// --------------------------------------------------------------------------

func cleanBattingCareer(f *frame.Frame) error {
	hs := f.Col("highscore")
	f.Set("highscore_notout", containsMarker(hs, "*"))
	splitSpan(f)
	stripMarker(hs, "*")

	if err := frame.Coerce(f); err != nil {
		return err
	}

	// average = runs / (innings − not_outs); a zero denominator yields
	// a non-finite value which propagates as-is.
	f.Set("average", ratio(f, "runs", func(i int) (float64, bool) {
		inns, ok1 := f.Col("innings").Number(i)
		notOuts, ok2 := f.Col("not_outs").Number(i)
		return inns - notOuts, ok1 && ok2
	}))
	return nil
}

func cleanBattingInnings(f *frame.Frame) error {
	runs := f.Col("runs")
	f.Set("not_out", containsMarker(runs, "*"))

	if f.Has("opposition") {
		f.Col("opposition").MapStrings(func(s string) string {
			s = strings.TrimPrefix(s, "v ")
			s = strings.TrimSuffix(s, " Women")
			s = strings.TrimSuffix(s, " Wmn")
			return countries.Canonicalize(strings.TrimSpace(s))
		})
	}

	stripMarker(runs, "*")

	// Participation comes from the runs text ("DNB", "absent", ...).
	// Rows that did not bat get their runs cleared so the column can
	// coerce to an integer.
	parts := classifyColumn(runs)
	f.Set("participation", parts)
	for i := 0; i < f.Len(); i++ {
		if !parts.IsNull(i) && Participation(parts.Str(i)) != Batted {
			runs.SetNull(i)
		}
	}

	if err := frame.Coerce(f); err != nil {
		return err
	}

	// Recompute strike rate from the numeric columns. Missing runs
	// count as 0 here only; the cleaned runs column is untouched.
	if f.Has("balls_faced") {
		runsCol := f.Col("runs")
		bf := f.Col("balls_faced")
		n := f.Len()
		vals := make([]float64, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			faced, ok := bf.Number(i)
			if !ok {
				continue
			}
			scored, ok := runsCol.Number(i)
			if !ok {
				scored = 0
			}
			vals[i] = scored / faced * 100
			valid[i] = true
		}
		f.Set("strike_rate", frame.NewFloats(vals, valid))
	}
	return nil
}

// --------------------------------------------------------------------------
// Bowling
// --------------------------------------------------------------------------

func cleanBowling(f *frame.Frame, view View) error {
	splitSpan(f)

	// In the innings view the overs column carries the participation
	// text ("DNB" etc); overs must be cleared for any row that did not
	// bowl before the column can coerce.
	if f.Has("overs") {
		overs := f.Col("overs")
		parts := classifyColumn(overs)
		f.Set("participation", parts)
		for i := 0; i < f.Len(); i++ {
			if !parts.IsNull(i) && Participation(parts.Str(i)) != Batted {
				overs.SetNull(i)
			}
		}
	}

	if err := frame.Coerce(f); err != nil {
		return err
	}

	f.Set("average", ratio(f, "runs", numberOf(f, "wickets")))

	// Derive a ball count from cricket overs notation when the source
	// gives none: the integer part is completed overs, the decimal
	// digits count balls into the current over (4.3 = 27 balls).
	if !f.Has("balls") && f.Has("overs") {
		overs := f.Col("overs")
		n := f.Len()
		vals := make([]int64, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			ov, ok := overs.Number(i)
			if !ok {
				continue
			}
			whole := math.Floor(ov)
			vals[i] = int64(whole)*6 + int64(math.Round((ov-whole)*10))
			valid[i] = true
		}
		f.Set("balls", frame.NewInts(vals, valid))
	}

	if f.Has("balls") {
		reconcileEconomy(f)
		f.Set("strike_rate", ratio(f, "balls", numberOf(f, "wickets")))
	}
	return nil
}

// reconcileEconomy recomputes economy as runs/(balls/6) and overrides
// the reported value only when the rounded recomputation differs from
// it by more than 0.05; small drift trusts the source.
func reconcileEconomy(f *frame.Frame) {
	balls := f.Col("balls")
	runs := f.Col("runs")
	reported := f.Col("economy")

	n := f.Len()
	vals := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		r, okR := runs.Number(i)
		b, okB := balls.Number(i)
		var recomputed float64
		recomputable := okR && okB
		if recomputable {
			recomputed = r / (b / 6)
		}

		if reported != nil {
			if orig, ok := reported.Number(i); ok {
				vals[i] = orig
				valid[i] = true
				if recomputable && math.Abs(round2(recomputed)-orig) > 0.05 {
					vals[i] = recomputed
				}
				continue
			}
		}
		if recomputable {
			vals[i] = recomputed
			valid[i] = true
		}
	}
	f.Set("economy", frame.NewFloats(vals, valid))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// --------------------------------------------------------------------------
// Fielding
// --------------------------------------------------------------------------

func cleanFielding(f *frame.Frame) error {
	splitSpan(f)
	return frame.Coerce(f)
}

// --------------------------------------------------------------------------
// Shared steps
// --------------------------------------------------------------------------

// replaceSentinel treats the "-" placeholder as missing everywhere.
func replaceSentinel(f *frame.Frame) {
	for _, name := range f.Names() {
		col := f.Col(name)
		if col.Kind() != frame.String {
			continue
		}
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) && strings.TrimSpace(col.Str(i)) == "-" {
				col.SetNull(i)
			}
		}
	}
}

// splitSpan splits a career span like "2005-2015" into start and end.
func splitSpan(f *frame.Frame) {
	if !f.Has("span") {
		return
	}
	span := f.Col("span")
	n := span.Len()
	starts := make([]string, n)
	ends := make([]string, n)
	startValid := make([]bool, n)
	endValid := make([]bool, n)
	for i := 0; i < n; i++ {
		if span.IsNull(i) {
			continue
		}
		parts := strings.SplitN(span.Str(i), "-", 2)
		starts[i] = parts[0]
		startValid[i] = true
		if len(parts) == 2 {
			ends[i] = parts[1]
			endValid[i] = true
		}
	}
	f.Set("start", frame.NewStringsValid(starts, startValid))
	f.Set("end", frame.NewStringsValid(ends, endValid))
}

// containsMarker builds a bool column flagging values containing marker.
func containsMarker(c *frame.Column, marker string) *frame.Column {
	n := c.Len()
	vals := make([]bool, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if c.IsNull(i) {
			continue
		}
		vals[i] = strings.Contains(c.Str(i), marker)
		valid[i] = true
	}
	return frame.NewBools(vals, valid)
}

// stripMarker removes marker from every present value in place.
func stripMarker(c *frame.Column, marker string) {
	c.MapStrings(func(s string) string {
		return strings.ReplaceAll(s, marker, "")
	})
}

// classifyColumn classifies a free-text column into a participation
// column. Missing input classifies as Batted.
func classifyColumn(c *frame.Column) *frame.Column {
	n := c.Len()
	vals := make([]string, n)
	for i := 0; i < n; i++ {
		if c.IsNull(i) {
			vals[i] = string(Batted)
			continue
		}
		vals[i] = string(ClassifyParticipation(c.Str(i)))
	}
	return frame.NewStrings(vals)
}

// ratio builds numerator/denominator as a float column; rows where
// either side is missing stay missing, zero denominators produce
// non-finite values.
func ratio(f *frame.Frame, numerator string, denom func(int) (float64, bool)) *frame.Column {
	num := f.Col(numerator)
	n := f.Len()
	vals := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		top, ok1 := num.Number(i)
		bottom, ok2 := denom(i)
		if ok1 && ok2 {
			vals[i] = top / bottom
			valid[i] = true
		}
	}
	return frame.NewFloats(vals, valid)
}

func numberOf(f *frame.Frame, name string) func(int) (float64, bool) {
	return func(i int) (float64, bool) {
		return f.Col(name).Number(i)
	}
}

var countryAnnotation = regexp.MustCompile(`\(([A-Za-z /\-]+)\)`)

// extractPlayerCountry pulls an embedded country annotation like
// "J Smith (ENG)" out of the player column. Only runs when at least
// one value carries the annotation (multi-country tables).
func extractPlayerCountry(f *frame.Frame) {
	if !f.Has("player") {
		return
	}
	player := f.Col("player")
	if player.Kind() != frame.String {
		return
	}

	n := player.Len()
	found := false
	for i := 0; i < n; i++ {
		if !player.IsNull(i) && countryAnnotation.MatchString(player.Str(i)) {
			found = true
			break
		}
	}
	if !found {
		return
	}

	names := make([]string, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if player.IsNull(i) {
			continue
		}
		m := countryAnnotation.FindStringSubmatch(player.Str(i))
		if m == nil {
			continue
		}
		token := strings.TrimSuffix(m[1], "-W")
		names[i] = countries.Canonicalize(token)
		valid[i] = true
		player.SetStr(i, strings.TrimSpace(countryAnnotation.ReplaceAllString(player.Str(i), "")))
	}
	f.Set("country", frame.NewStringsValid(names, valid))
}
