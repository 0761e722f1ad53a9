package domain

import (
	"encoding/json"
	"strings"
)

// Category is a canonical furniture category label.
type Category string

// categoryDef pairs a canonical plural label with its singular spelling.
type categoryDef struct {
	Label    Category
	Singular string
}

// categoryDefs is the closed canonical category set. The first entry is the
// fallback when a vision response cannot be mapped to any label.
var categoryDefs = []categoryDef{
	{Label: "Sofas", Singular: "sofa"},
	{Label: "Arm Chairs", Singular: "arm chair"},
	{Label: "Dining Chairs", Singular: "dining chair"},
	{Label: "Bar Stools", Singular: "bar stool"},
	{Label: "Coffee Tables", Singular: "coffee table"},
	{Label: "Side Tables", Singular: "side table"},
	{Label: "Dining Tables", Singular: "dining table"},
	{Label: "Desks", Singular: "desk"},
	{Label: "Beds", Singular: "bed"},
	{Label: "Nightstands", Singular: "nightstand"},
	{Label: "Dressers", Singular: "dresser"},
	{Label: "Bookcases", Singular: "bookcase"},
	{Label: "Cabinets", Singular: "cabinet"},
	{Label: "Benches", Singular: "bench"},
	{Label: "Ottomans", Singular: "ottoman"},
	{Label: "Rugs", Singular: "rug"},
	{Label: "Floor Lamps", Singular: "floor lamp"},
	{Label: "Table Lamps", Singular: "table lamp"},
	{Label: "Pendant Lights", Singular: "pendant light"},
	{Label: "Chandeliers", Singular: "chandelier"},
	{Label: "Wall Sconces", Singular: "wall sconce"},
	{Label: "Mirrors", Singular: "mirror"},
	{Label: "Wall Art", Singular: "wall art"},
	{Label: "Vases", Singular: "vase"},
	{Label: "Planters", Singular: "planter"},
	{Label: "Cushions", Singular: "cushion"},
	{Label: "Curtains", Singular: "curtain"},
}

// categoryLookup maps lower-cased plural and singular spellings to the canonical label.
var categoryLookup = func() map[string]Category {
	lookup := make(map[string]Category, len(categoryDefs)*2)
	for _, def := range categoryDefs {
		lookup[strings.ToLower(string(def.Label))] = def.Label
		lookup[def.Singular] = def.Label
	}
	return lookup
}()

// Categories returns the canonical categories in their fixed order.
func Categories() []Category {
	out := make([]Category, len(categoryDefs))
	for i, def := range categoryDefs {
		out[i] = def.Label
	}
	return out
}

// Singular returns the singular spelling of a canonical category.
func (c Category) Singular() string {
	for _, def := range categoryDefs {
		if def.Label == c {
			return def.Singular
		}
	}
	return strings.ToLower(string(c))
}

// FallbackCategory is returned when nothing else matches.
func FallbackCategory() Category {
	return categoryDefs[0].Label
}

// LookupCategory resolves an exact plural or singular spelling, case-insensitively.
func LookupCategory(value string) (Category, bool) {
	c, ok := categoryLookup[normalizeCategoryText(value)]
	return c, ok
}

// ParseCategory maps a free-form vision response onto the canonical set.
//
// The response may be a JSON object with a "category" field or plain text.
// Resolution order: exact lookup, substring match in canonical order, fallback label.
// It never fails.
func ParseCategory(raw string) Category {
	var candidate string
	var payload struct {
		Category string `json:"category"`
	}
	trimmed := strings.TrimSpace(stripCodeFence(raw))
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil && payload.Category != "" {
		candidate = payload.Category
	} else {
		candidate = trimmed
	}

	text := normalizeCategoryText(candidate)
	if text == "" {
		return FallbackCategory()
	}
	if c, ok := categoryLookup[text]; ok {
		return c
	}

	for _, def := range categoryDefs {
		label := strings.ToLower(string(def.Label))
		if strings.Contains(text, label) || strings.Contains(text, def.Singular) {
			return def.Label
		}
	}
	for _, def := range categoryDefs {
		label := strings.ToLower(string(def.Label))
		if strings.Contains(label, text) {
			return def.Label
		}
	}

	return FallbackCategory()
}

// normalizeCategoryText lower-cases, trims and collapses inner whitespace and quotes.
func normalizeCategoryText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "\"'`.")
	return strings.Join(strings.Fields(s), " ")
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}
