package app

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/inbound/cli"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "LLM_MODEL", UsedDefault: true},
			{Key: "DB_DRIVER", UsedDefault: true},
		},
	}

	err := MermaidGraphIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	graph, err := depend.ResolveNamed[string](cli.IntrospectionGraphName)
	require.NoError(t, err)
	assert.NotEmpty(t, graph)
}
