package narrator

import "fmt"

// SystemPrompt is the fixed game-master instruction seeded as the first turn
// of every transcript.
const SystemPrompt = `You are an expert Dungeons & Dragons Game Master. You create immersive,
engaging narratives and respond to player actions with vivid descriptions and exciting scenarios.

Rules:
- Keep responses concise (2-4 paragraphs max)
- Be dramatic and atmospheric
- Present clear choices or ask what the player does next
- Track combat and challenges fairly
- Make the world feel alive and responsive
- Never break character as the GM`

// ReplySuffix is appended after the linearized transcript on every game
// action so the generator answers in character.
const ReplySuffix = "\nRespond as the Game Master:"

// OpeningPrompt builds the one-shot prompt that asks the generator for a
// session's opening scene.
func OpeningPrompt(name, race, class, weapon, armor string) string {
	return fmt.Sprintf(`Start a D&D adventure for %s, a %s %s.
Their weapon is %s and they wear %s.
Begin the adventure with an engaging scene. Keep it to 2-3 paragraphs.`,
		name, race, class, weapon, armor)
}
