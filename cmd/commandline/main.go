package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hearthfire/gamemaster/pkg/sdk"
	"github.com/hearthfire/gamemaster/pkg/utils"
)

// Interactive command-line client for playtesting against a running backend
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	client := sdk.NewClient(cfg.GetWithDefault("BACKEND_URL", "http://localhost:8000"))

	ctx := context.Background()
	if err := play(ctx, client); err != nil {
		log.Fatalf("[COMMANDLINE]: %v", err)
	}
}

func play(ctx context.Context, client *sdk.Client) error {
	scanner := bufio.NewScanner(os.Stdin)

	name := ask(scanner, "Character name")
	race := ask(scanner, "Race (Dwarf, Elf, Human, Dragonborn, Gnome, Half-Orc)")
	class := ask(scanner, "Class (Knight, Mage, Archer, Tank, Charmer, Monk)")

	created, err := client.CreateCharacter(ctx, sdk.CreateCharacterRequest{
		Name:           name,
		Race:           race,
		CharacterClass: class,
	})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	fmt.Printf("Created character #%d: %s the %s %s (%d HP, %s, %s)\n",
		created.CharacterID, name, race, class, created.MaxHealth, created.Weapon, created.Armor)

	opened, err := client.CreateSession(ctx, created.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	fmt.Println("--------------------------------------------------")
	fmt.Println(opened.InitialMessage)
	fmt.Println("--------------------------------------------------")
	fmt.Println("Type your actions. Type 'exit' to quit.")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" {
			break
		}

		reply, err := client.GameAction(ctx, opened.SessionID, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Println("--------------------------------------------------")
		fmt.Println(reply.Response)
		fmt.Println("--------------------------------------------------")
	}

	return nil
}

func ask(scanner *bufio.Scanner, prompt string) string {
	for {
		fmt.Printf("%s: ", prompt)
		if !scanner.Scan() {
			os.Exit(0)
		}
		if answer := strings.TrimSpace(scanner.Text()); answer != "" {
			return answer
		}
	}
}
