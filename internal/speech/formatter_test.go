package speech_test

import (
	"strings"
	"testing"

	"ivy_homes/internal/domain"
	"ivy_homes/internal/speech"
)

func pstr(s string) *string     { return &s }
func pint(i int) *int           { return &i }
func pfloat(f float64) *float64 { return &f }

func bangaloreCatalog() []domain.Property {
	return []domain.Property{
		{
			ID: "P1", Type: pstr("apartment"), City: pstr("Bangalore"),
			Neighborhood: pstr("Koramangala"), Price: pfloat(9_500_000),
			Bedrooms: pint(2), Bathrooms: pint(2),
		},
		{
			ID: "P2", Type: pstr("apartment"), City: pstr("Bangalore"),
			Neighborhood: pstr("Whitefield"), Price: pfloat(12_000_000),
			Bedrooms: pint(3), Bathrooms: pint(2),
		},
	}
}

func TestSummarize_EmptyIsFixedApology(t *testing.T) {
	f := speech.NewFormatter(nil)
	got := f.Summarize(nil)
	if got == "" {
		t.Fatal("empty result must still produce speakable text")
	}
	if got != "I couldn't find any properties matching your criteria." {
		t.Fatalf("unexpected apology: %q", got)
	}
	if got != f.Summarize([]domain.Property{}) {
		t.Fatal("apology must be stable")
	}
}

func TestSummarize_SingleRecordSentence(t *testing.T) {
	f := speech.NewFormatter(speech.PlainCurrency{})
	p := domain.Property{
		ID: "H1", Type: pstr("house"), Address: pstr("14 Elm Street"),
		Bedrooms: pint(3), Bathrooms: pint(2), Price: pfloat(450_000),
		Description: pstr("A quiet corner lot with a large garden."),
	}
	got := f.Summarize([]domain.Property{p})
	for _, want := range []string{"house", "14 Elm Street", "3 bedrooms", "2 bathrooms", "$450,000", "A quiet corner lot with a large garden."} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
}

func TestSummarize_SingleRecordDefaults(t *testing.T) {
	f := speech.NewFormatter(nil)
	got := f.Summarize([]domain.Property{{ID: "X"}})
	for _, want := range []string{"a property", "an available location", "0 bedrooms", "$0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary %q missing %q", got, want)
		}
	}
	if strings.HasSuffix(got, " ") {
		t.Fatalf("summary has trailing space: %q", got)
	}
}

func TestSummarize_ManyPreviewsThreeAndCountsRemainder(t *testing.T) {
	f := speech.NewFormatter(speech.PlainCurrency{})
	props := []domain.Property{
		{ID: "1", Type: pstr("condo"), Neighborhood: pstr("Downtown"), Bedrooms: pint(1), Price: pfloat(200_000)},
		{ID: "2", Type: pstr("house"), City: pstr("Austin"), Bedrooms: pint(4), Price: pfloat(700_000)},
		{ID: "3", Type: pstr("apartment"), Bedrooms: pint(2), Price: pfloat(350_000)},
		{ID: "4", Type: pstr("house"), Bedrooms: pint(3), Price: pfloat(500_000)},
	}
	got := f.Summarize(props)

	if !strings.Contains(got, "I found 4 properties") {
		t.Fatalf("missing total count: %q", got)
	}
	if strings.Count(got, "Property ") != 3 {
		t.Fatalf("expected exactly 3 previewed records: %q", got)
	}
	if !strings.Contains(got, "And 1 more options.") {
		t.Fatalf("missing remainder note: %q", got)
	}
	if !strings.Contains(got, "Would you like more details on any of these?") {
		t.Fatalf("missing closing invitation: %q", got)
	}
	// neighborhood preferred, then city, then a generic fallback
	if !strings.Contains(got, "in Downtown") || !strings.Contains(got, "in Austin") || !strings.Contains(got, "in the area") {
		t.Fatalf("area fallbacks wrong: %q", got)
	}
}

func TestSummarize_ExactlyThreeHasNoRemainderNote(t *testing.T) {
	f := speech.NewFormatter(nil)
	props := []domain.Property{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	got := f.Summarize(props)
	if strings.Contains(got, "more options") {
		t.Fatalf("unexpected remainder note: %q", got)
	}
}

func TestDescribe_AddsAreaAndYearWhenKnown(t *testing.T) {
	f := speech.NewFormatter(nil)
	p := domain.Property{
		ID: "H1", Type: pstr("condo"), Address: pstr("9 Bay View"),
		Bedrooms: pint(2), Bathrooms: pint(2), Price: pfloat(320_000),
		SquareFeet: pfloat(1250), YearBuilt: pint(2014),
	}
	got := f.Describe(p)
	if !strings.Contains(got, "1,250 square feet") || !strings.Contains(got, "built in 2014") {
		t.Fatalf("details missing extras: %q", got)
	}

	// unknown extras stay silent instead of speaking zeros
	bare := f.Describe(domain.Property{ID: "H2"})
	if strings.Contains(bare, "square feet") || strings.Contains(bare, "built in") {
		t.Fatalf("unexpected extras for bare record: %q", bare)
	}
}

func TestNotFound_NamesTheID(t *testing.T) {
	got := speech.NotFound("P404")
	if !strings.Contains(got, "P404") || got == "" {
		t.Fatalf("unexpected not-found sentence: %q", got)
	}
}

func TestIndianCurrency_BucketsAtDocumentedThresholds(t *testing.T) {
	c := speech.IndianCurrency{}

	// below the 10,000,000 crore threshold renders in lakh
	if got := c.Format(9_500_000); got != "₹95 lakh" {
		t.Fatalf("got %q, want ₹95 lakh", got)
	}
	// at and above the threshold renders in crore
	if got := c.Format(12_000_000); got != "₹1.2 crore" {
		t.Fatalf("got %q, want ₹1.2 crore", got)
	}
	if got := c.Format(10_000_000); got != "₹1 crore" {
		t.Fatalf("got %q, want ₹1 crore", got)
	}
	// small amounts fall back to plain grouping
	if got := c.Format(75_000); got != "₹75,000" {
		t.Fatalf("got %q, want ₹75,000", got)
	}
}

func TestPlainCurrency_GroupsThousands(t *testing.T) {
	c := speech.PlainCurrency{}
	if got := c.Format(9_500_000); got != "$9,500,000" {
		t.Fatalf("got %q", got)
	}
	if got := c.Format(0); got != "$0" {
		t.Fatalf("got %q", got)
	}
	if got := (speech.PlainCurrency{Symbol: "€"}).Format(1_000); got != "€1,000" {
		t.Fatalf("got %q", got)
	}
}

func TestBangaloreScenario_CurrencyRendering(t *testing.T) {
	f := speech.NewFormatter(speech.IndianCurrency{})
	cat := bangaloreCatalog()

	p1 := f.Summarize(cat[:1])
	if !strings.Contains(p1, "Koramangala") {
		t.Fatalf("P1 summary must name the neighborhood: %q", p1)
	}
	if !strings.Contains(p1, "₹95 lakh") {
		t.Fatalf("P1 must render below-threshold price in lakh: %q", p1)
	}

	p2 := f.Summarize(cat[1:])
	if !strings.Contains(p2, "₹1.2 crore") {
		t.Fatalf("P2 must render above-threshold price in crore: %q", p2)
	}
}
