// Package speech renders property records into short prose fit for a
// text-to-speech voice. Every function is a pure, total function of its
// input and always returns a non-empty sentence: downstream synthesis must
// always have something to say.
package speech

import (
	"fmt"
	"strings"

	"ivy_homes/internal/domain"
)

const apology = "I couldn't find any properties matching your criteria."

// previewCount is how many records a multi-result summary describes before
// folding the rest into "more options".
const previewCount = 3

type Formatter struct {
	currency CurrencyFormatter
}

func NewFormatter(c CurrencyFormatter) *Formatter {
	if c == nil {
		c = PlainCurrency{}
	}
	return &Formatter{currency: c}
}

// Summarize converts zero, one, or many records into one spoken paragraph.
func (f *Formatter) Summarize(props []domain.Property) string {
	switch len(props) {
	case 0:
		return apology
	case 1:
		return f.describeOne(props[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d properties. Here are the top matches: ", len(props))
	for i, p := range props {
		if i >= previewCount {
			break
		}
		fmt.Fprintf(&b, "Property %d: A %d-bedroom %s in %s for %s. ",
			i+1, p.BedroomCount(), typeOrFallback(p), areaOrFallback(p), f.currency.Format(p.PriceValue()))
	}
	if extra := len(props) - previewCount; extra > 0 {
		fmt.Fprintf(&b, "And %d more options. ", extra)
	}
	b.WriteString("Would you like more details on any of these?")
	return b.String()
}

// Describe renders a single record in full for a details lookup, adding
// square footage and build year when the catalog knows them.
func (f *Formatter) Describe(p domain.Property) string {
	s := f.describeOne(p)
	var extras []string
	if p.AreaSqFt() > 0 {
		extras = append(extras, fmt.Sprintf("It offers %s square feet", groupThousands(p.AreaSqFt())))
	}
	if p.BuiltYear() > 0 {
		if len(extras) == 0 {
			extras = append(extras, fmt.Sprintf("It was built in %d", p.BuiltYear()))
		} else {
			extras[0] += fmt.Sprintf(" and was built in %d", p.BuiltYear())
		}
	}
	if len(extras) > 0 {
		s += " " + extras[0] + "."
	}
	return s
}

// NotFound is the polite miss sentence for an unknown property id.
func NotFound(id string) string {
	return fmt.Sprintf("I'm sorry, I couldn't find a property with the ID %s. Could you double-check it?", id)
}

func (f *Formatter) describeOne(p domain.Property) string {
	s := fmt.Sprintf("I found a %s at %s. It has %d bedrooms, %d bathrooms, and is priced at %s.",
		typeOrFallback(p), addressOrFallback(p),
		p.BedroomCount(), p.BathroomCount(), f.currency.Format(p.PriceValue()))
	if d := p.DescriptionText(); d != "" {
		s += " " + d
	}
	return s
}

func typeOrFallback(p domain.Property) string {
	if t := p.TypeName(); t != "" {
		return t
	}
	return "property"
}

// addressOrFallback prefers the street address, then neighborhood and city,
// so a record with no address still names where it is.
func addressOrFallback(p domain.Property) string {
	if a := p.AddressLine(); a != "" {
		return a
	}
	if n := p.NeighborhoodName(); n != "" {
		if c := p.CityName(); c != "" {
			return n + " in " + c
		}
		return n
	}
	if c := p.CityName(); c != "" {
		return c
	}
	return "an available location"
}

// areaOrFallback prefers the neighborhood, then the city, for the short
// multi-result clause.
func areaOrFallback(p domain.Property) string {
	if n := p.NeighborhoodName(); n != "" {
		return n
	}
	if c := p.CityName(); c != "" {
		return c
	}
	return "the area"
}
