package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("usecases")
	LLMTokensUsed metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the tokens consumed by one chat completion.
func RecordLLMTokensUsed(ctx context.Context, model string, usage domain.AssistantUsage) {
	modelAttr := attribute.String("model", model)
	LLMTokensUsed.Add(ctx, int64(usage.PromptTokens), metric.WithAttributes(
		modelAttr,
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(usage.CompletionTokens), metric.WithAttributes(
		modelAttr,
		attribute.String("token_type", "completion"),
	))
}
