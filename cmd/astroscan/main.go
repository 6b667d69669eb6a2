package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/astroscan/astroscan/internal/config"
	"github.com/astroscan/astroscan/internal/db"
	"github.com/astroscan/astroscan/internal/mcp"
	"github.com/astroscan/astroscan/internal/narrative"
	"github.com/astroscan/astroscan/internal/reading"
	"github.com/astroscan/astroscan/internal/tarot"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"chart": true, "energy": true, "depth": true, "analyze": true,
	"draw": true, "profile": true, "reading": true, "web": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
     _        _
    /_\   ___| |_ _ __ ___  ___  ___ __ _ _ __
   //_\\ / __| __| '__/ _ \/ __|/ __/ _' | '_ \
  /  _  \\__ \ |_| | | (_) \__ \ (_| (_| | | | |
  \_/ \_/|___/\__|_|  \___/|___/\___\__,_|_| |_|

  Symbolic tarot and astrology reading engine

  Usage: astroscan <command> [options]
         astroscan --help

  MCP server mode requires piped input.`)
}

// loadDeck fetches the remote catalog, falling back to the builtin deck.
func loadDeck(cfg *config.Config) tarot.Deck {
	timeout := time.Duration(cfg.DeckTimeoutSeconds) * time.Second
	client := tarot.NewClient(cfg.DeckSourceURL, timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.LoadDeck(ctx)
}

// newNarrator builds the narrative generator when a model and API key are
// configured, otherwise sessions use the builtin templated insight alone.
func newNarrator(cfg *config.Config) reading.Narrator {
	if cfg.NarrativeModel == "" {
		return nil
	}
	apiKey := os.Getenv(cfg.NarrativeAPIKeyEnv)
	if apiKey == "" {
		return nil
	}
	return narrative.New(apiKey, cfg.NarrativeModel)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".astroscan")

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	db.ConfigurePool(database, cfg)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(database, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'astroscan --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tools: %v\n", unknown)
	}

	deck := loadDeck(cfg)
	manager := reading.NewManager(deck, database, newNarrator(cfg))
	handlers := mcp.NewHandlers(manager, deck, database)

	if err := mcp.Run(handlers, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
