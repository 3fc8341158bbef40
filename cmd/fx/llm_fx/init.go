package llm_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"primetravel/pkg/utils"
)

var Module = fx.Provide(provideCompletionClient)

func provideCompletionClient() utils.CompletionClientInterface {

	provider := os.Getenv("LLM_PROVIDER")

	var apiKey, model string
	switch provider {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		apiKey = os.Getenv("GROQ_API_KEY")
		model = os.Getenv("GROQ_MODEL")
	}

	client, err := utils.NewCompletionClient(provider, apiKey, model)
	if err != nil {
		log.Fatalf("Failed to initialize completion client: %v", err)
	}
	return client
}
