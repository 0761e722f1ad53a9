package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"-"`
	out    io.Writer
}

// Initialize registers the logger in the dependency container.
// Messages follow the "Component: message" convention after the optional prefix.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.out
	if out == nil {
		out = os.Stdout
	}
	prefix := il.Prefix
	if prefix == "-" {
		prefix = ""
	}
	depend.Register(log.New(out, prefix, log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}
