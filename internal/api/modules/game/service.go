package game

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/hearthfire/gamemaster/internal/narrator"
	"github.com/hearthfire/gamemaster/internal/orchestrator"
	"github.com/hearthfire/gamemaster/internal/stores/character"
	"github.com/hearthfire/gamemaster/internal/stores/session"
	"github.com/hearthfire/gamemaster/internal/sweeper"
	"github.com/hearthfire/gamemaster/pkg/utils"
)

var orch *orchestrator.Orchestrator

// Init builds the module's stores, narrator and orchestrator from config,
// and starts the stale-session sweeper when a retention window is set.
func Init(cfg *utils.Config) error {
	dbConfig := mysql.Config{
		User:      cfg.Get("MYSQL_USER"),
		Passwd:    cfg.Get("MYSQL_PASSWORD"),
		Net:       "tcp",
		Addr:      fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.GetWithDefault("MYSQL_PORT", "3306")),
		DBName:    cfg.Get("MYSQL_DATABASE"),
		ParseTime: true,
	}

	characters, err := character.NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to initialize character store: %w", err)
	}

	sessions, err := session.NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	n, err := narrator.FromConfig(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize narrator: %w", err)
	}

	timeout := time.Duration(cfg.GetIntWithDefault("NARRATOR_TIMEOUT_SECONDS", 30)) * time.Second
	orch = orchestrator.New(characters, sessions, n, timeout)

	// Retention of 0 (the default) disables sweeping
	if days := cfg.GetInt("SESSION_RETENTION_DAYS"); days > 0 {
		sw, err := sweeper.New(sessions, time.Duration(days)*24*time.Hour,
			cfg.GetWithDefault("SESSION_SWEEP_SCHEDULE", "@hourly"))
		if err != nil {
			return fmt.Errorf("failed to initialize session sweeper: %w", err)
		}
		sw.Start()
	}

	return nil
}

// GetOrchestrator returns the module's orchestrator
func GetOrchestrator() *orchestrator.Orchestrator {
	return orch
}

// SetOrchestrator swaps the module's orchestrator (used by tests)
func SetOrchestrator(o *orchestrator.Orchestrator) {
	orch = o
}
