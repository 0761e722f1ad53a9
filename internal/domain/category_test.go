package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expected Category
	}{
		"json-exact-label": {
			raw:      `{"category": "Arm Chairs"}`,
			expected: "Arm Chairs",
		},
		"json-lowercase-singular": {
			raw:      `{"category": "sofa"}`,
			expected: "Sofas",
		},
		"json-in-code-fence": {
			raw:      "```json\n{\"category\": \"Coffee Tables\"}\n```",
			expected: "Coffee Tables",
		},
		"plain-text-with-whitespace": {
			raw:      "  Floor Lamps \n",
			expected: "Floor Lamps",
		},
		"plain-text-quoted": {
			raw:      `"bench"`,
			expected: "Benches",
		},
		"substring-response-contains-label": {
			raw:      "This looks like a mid-century dining table in walnut.",
			expected: "Dining Tables",
		},
		"substring-label-contains-response": {
			raw:      `{"category": "chair"}`,
			expected: "Arm Chairs",
		},
		"unknown-falls-back-to-first-label": {
			raw:      `{"category": "spaceship"}`,
			expected: "Sofas",
		},
		"empty-response": {
			raw:      "",
			expected: "Sofas",
		},
		"json-without-category-field": {
			raw:      `{"label": "rug"}`,
			expected: "Rugs",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseCategory(tt.raw)
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, Categories(), got)
		})
	}
}

func TestLookupCategory(t *testing.T) {
	tests := map[string]struct {
		value    string
		expected Category
		found    bool
	}{
		"plural":         {value: "Wall Sconces", expected: "Wall Sconces", found: true},
		"singular":       {value: "wall sconce", expected: "Wall Sconces", found: true},
		"mixed-case":     {value: "ARM CHAIR", expected: "Arm Chairs", found: true},
		"extra-spaces":   {value: "  side   table ", expected: "Side Tables", found: true},
		"no-substring":   {value: "sofa bed deluxe", found: false},
		"unknown-string": {value: "toaster", found: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, found := LookupCategory(tt.value)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCategories(t *testing.T) {
	categories := Categories()
	assert.Equal(t, FallbackCategory(), categories[0])
	assert.Len(t, categories, len(categoryDefs))

	categories[0] = "changed"
	assert.Equal(t, Category("Sofas"), Categories()[0])
}

func TestCategory_Singular(t *testing.T) {
	assert.Equal(t, "bench", Category("Benches").Singular())
	assert.Equal(t, "wall art", Category("Wall Art").Singular())
	assert.Equal(t, "stools", Category("Stools").Singular())
}
