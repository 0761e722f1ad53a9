package app

import (
	"context"
	"log"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/visionffe/visionffe-api/internal/adapters/inbound/http"
)

// DependencyGraphIntrospector renders the dependency graph served on /introspect
// and logs the configuration keys left at their defaults.
type DependencyGraphIntrospector struct{}

// Introspect registers the Mermaid graph of the report.
func (DependencyGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.IntrospectionGraphName)

	if logger, err := depend.Resolve[*log.Logger](); err == nil {
		if keys := defaultedKeys(r); len(keys) > 0 {
			logger.Printf("VisionApp: configuration defaults in use for %s", strings.Join(keys, ", "))
		}
	}
	return nil
}

func defaultedKeys(r introspection.Report) []string {
	var keys []string
	for _, c := range r.Configs {
		if c.UsedDefault && !slices.Contains(keys, c.Key) {
			keys = append(keys, c.Key)
		}
	}
	slices.Sort(keys)
	return keys
}
