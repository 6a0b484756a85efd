package game

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the game module's routes. They sit at the root,
// matching the paths the browser pages call.
func RegisterRoutes(engine *gin.Engine) {
	engine.POST("/create_character", CreateCharacter) // Create a character from a race/class selection
	engine.POST("/create_session", CreateSession)     // Open a game session for a character
	engine.POST("/game_action", GameAction)           // Advance a session with a player action
	engine.GET("/character/:id", GetCharacter)        // Fetch a character record
}
