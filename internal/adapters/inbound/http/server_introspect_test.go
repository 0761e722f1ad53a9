package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestIntrospectHandler(t *testing.T) {
	tests := map[string]struct {
		graph        string
		expectedCode int
		expectedType string
		contains     []string
	}{
		"renders-registered-graph": {
			graph:        "graph TD;\nVisionServer-->SearchCatalog;\nSearchCatalog-->Embedder;",
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			contains: []string{
				"<title>VisionFFE Introspection Graph</title>",
				"<h1>VisionFFE Introspection Graph</h1>",
				`mermaid.render('mermaid-svg-id', "graph TD;\nVisionServer--\u003eSearchCatalog;\nSearchCatalog--\u003eEmbedder;")`,
			},
		},
		"graph-not-registered": {
			expectedCode: http.StatusInternalServerError,
			expectedType: "text/plain; charset=utf-8",
			contains:     []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)
			if tt.graph != "" {
				depend.RegisterNamed(tt.graph, IntrospectionGraphName)
			}

			w := httptest.NewRecorder()
			IntrospectHandler(w, httptest.NewRequest(http.MethodGet, "/introspect", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
			for _, want := range tt.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}
