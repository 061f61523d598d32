package factory

import (
	"log"

	"vibecode-be/pkg/synth"
	"vibecode-be/pkg/synth/canned"
	"vibecode-be/pkg/synth/gemini"
)

// NewProvider selects the synthesis backend. Presence of the API key is the
// only mode switch: empty or placeholder keys fall back to the degraded
// canned provider.
func NewProvider(apiKey, model string) synth.Provider {
	if apiKey == "" || apiKey == "TODO_YOUR_API_KEY_HERE" {
		log.Println("[WARN] GOOGLE_GEMINI_API_KEY not set, using canned synthesis provider")
		return canned.NewProvider()
	}
	log.Printf("[INFO] Using Synthesis Provider: GEMINI (%s)", model)
	return gemini.NewProvider(apiKey, model)
}
