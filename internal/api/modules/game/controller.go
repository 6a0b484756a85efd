package game

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hearthfire/gamemaster/internal/orchestrator"
	"github.com/hearthfire/gamemaster/internal/stores/character"
	"github.com/hearthfire/gamemaster/pkg/sdk"
)

// CreateCharacter handles POST /create_character
func CreateCharacter(c *gin.Context) {
	// Parse request body
	var req sdk.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "could not parse request body: " + err.Error()})
		return
	}

	created, err := GetOrchestrator().CreateCharacter(c.Request.Context(), req.Name, req.Race, req.CharacterClass)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sdk.CreateCharacterResponse{
		Success:     true,
		CharacterID: created.ID,
		Stats:       created.Attributes(),
		MaxHealth:   created.MaxHealth,
		Weapon:      created.Weapon,
		Armor:       created.Armor,
	})
}

// CreateSession handles POST /create_session
func CreateSession(c *gin.Context) {
	// Parse request body
	var req sdk.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "could not parse request body: " + err.Error()})
		return
	}

	opened, err := GetOrchestrator().OpenSession(c.Request.Context(), req.CharacterID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sdk.CreateSessionResponse{
		Success:        true,
		SessionID:      opened.Token,
		Character:      toSDKCharacter(opened.Character),
		InitialMessage: opened.InitialMessage,
	})
}

// GameAction handles POST /game_action
func GameAction(c *gin.Context) {
	// Parse request body
	var req sdk.GameActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "could not parse request body: " + err.Error()})
		return
	}

	reply, err := GetOrchestrator().AdvanceSession(c.Request.Context(), req.SessionID, req.Prompt)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sdk.GameActionResponse{Success: true, Response: reply})
}

// GetCharacter handles GET /character/:id
func GetCharacter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "invalid character id"})
		return
	}

	found, err := GetOrchestrator().GetCharacter(c.Request.Context(), uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toSDKCharacter(found))
}

// fail translates the orchestrator's error taxonomy into an HTTP status and
// a structured failure body. This is the single place where errors map to
// statuses.
func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), sdk.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, orchestrator.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, orchestrator.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, orchestrator.ErrGenerator):
		return http.StatusBadGateway
	default:
		// ErrCorrupt, ErrStorage and anything unexpected
		return http.StatusInternalServerError
	}
}

// Helper method to convert a stored character to its API form
func toSDKCharacter(ch *character.Character) sdk.Character {
	return sdk.Character{
		ID:           ch.ID,
		Name:         ch.Name,
		Race:         ch.Race,
		Class:        ch.Class,
		Strength:     ch.Strength,
		Dexterity:    ch.Dexterity,
		Intelligence: ch.Intelligence,
		Wisdom:       ch.Wisdom,
		Constitution: ch.Constitution,
		Charisma:     ch.Charisma,
		Weapon:       ch.Weapon,
		Armor:        ch.Armor,
		Health:       ch.Health,
		MaxHealth:    ch.MaxHealth,
		Money:        ch.Money,
		Level:        ch.Level,
		CreatedAt:    ch.CreatedAt,
	}
}
