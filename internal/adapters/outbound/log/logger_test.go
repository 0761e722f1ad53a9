package log

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	out := &strings.Builder{}
	init := InitLogger{Prefix: "[visionffe] ", out: out}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)

	logger.Println("IngestCatalogImages: batch received")
	assert.Contains(t, out.String(), "[visionffe] IngestCatalogImages: batch received")
}

func TestInitLogger_Initialize_NoPrefix(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	out := &strings.Builder{}
	init := InitLogger{Prefix: "-", out: out}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)

	logger.Println("SearchCatalog: done")
	assert.NotContains(t, out.String(), "-SearchCatalog")
	assert.Contains(t, out.String(), "SearchCatalog: done")
}
