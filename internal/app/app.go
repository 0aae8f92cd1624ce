package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/inbound/cli"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/outbound/database"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/outbound/openai"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/outbound/openmeteo"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/usecases"
)

// NewWeatherBotApp creates the weather chatbot application hosting the given shell.
// Extra initializers run before the built-in ones, so tests can replace dependencies.
func NewWeatherBotApp(shell *cli.Shell, initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&time.InitTimeProvider{},
			&database.InitDB{},
			&database.InitTurnRepository{},
			&openmeteo.InitWeatherClient{},
			&openai.InitAssistantClient{},
			&assistant.InitAssistantActionRegistry{},

			&usecases.InitAskWeather{},
			&usecases.InitListHistory{},
			&usecases.InitClearHistory{},
		).
		Host(shell).
		Introspect(&MermaidGraphIntrospector{})
}
