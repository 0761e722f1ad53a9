package telemetry

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// untracedPrefixes are paths served without spans or request metrics.
var untracedPrefixes = []string{"/introspect"}

// RouteName returns the matched mux pattern of the request, or its method and path when nothing matched.
func RouteName(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + r.URL.Path
}

// Middleware instruments inbound requests under the given operation name.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return RouteName(r)
		}),
		otelhttp.WithMetricAttributesFn(routeAttributes),
		otelhttp.WithFilter(traced),
	)
}

func routeAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{semconv.HTTPRoute(RouteName(r))}
}

func traced(r *http.Request) bool {
	for _, prefix := range untracedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}
