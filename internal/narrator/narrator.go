// Package narrator adapts external text-generation services behind a single
// text-in/text-out interface. The rest of the system never sees provider
// types: it hands over a linearized transcript and gets narrative text back.
package narrator

import (
	"context"
	"fmt"

	"github.com/hearthfire/gamemaster/pkg/utils"
)

// Narrator generates narrative text from a prompt. Implementations must
// honor context cancellation; the orchestrator bounds every call with a
// timeout.
type Narrator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FromConfig builds the narrator backend selected by NARRATOR_PROVIDER
// (default gemini, matching the original service).
func FromConfig(ctx context.Context, cfg *utils.Config) (Narrator, error) {
	provider := cfg.GetWithDefault("NARRATOR_PROVIDER", "gemini")

	switch provider {
	case "gemini":
		apiKey := cfg.Get("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		return NewGemini(ctx, apiKey, cfg.GetWithDefault("NARRATOR_MODEL", "gemini-pro"))
	case "openai":
		apiKey := cfg.Get("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return NewOpenAI(apiKey, cfg.GetWithDefault("NARRATOR_MODEL", "gpt-4o-mini")), nil
	default:
		return nil, fmt.Errorf("unknown narrator provider %q", provider)
	}
}
