package app

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/inbound/cli"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the application's initializers, runnables and
// configuration keys as a Mermaid graph and registers it for the shell's --graph mode.
type MermaidGraphIntrospector struct{}

// Introspect generates the Mermaid graph from the report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), cli.IntrospectionGraphName)
	return nil
}
