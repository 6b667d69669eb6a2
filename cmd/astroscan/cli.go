package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/astroscan/astroscan/internal/analysis"
	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/config"
	"github.com/astroscan/astroscan/internal/db"
	"github.com/astroscan/astroscan/internal/energy"
	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/reading"
	"github.com/astroscan/astroscan/internal/tarot"
	"github.com/astroscan/astroscan/internal/web"
	"github.com/astroscan/astroscan/internal/zodiac"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(database *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "astroscan",
		Usage:   "Symbolic tarot and astrology reading engine",
		Version: Version,
		Commands: []*cli.Command{
			chartCmd(),
			energyCmd(),
			depthCmd(),
			analyzeCmd(),
			drawCmd(cfg),
			profileCmd(),
			readingCmd(database),
			webCmd(database, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// chartCmd creates the chart command.
func chartCmd() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "Derive a symbolic birth chart from birth data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Required: true, Usage: "Birth date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "time", Aliases: []string{"t"}, Required: true, Usage: "Birth time (HH:MM)"},
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Required: true, Usage: "Birth location"},
		},
		Action: func(c *cli.Context) error {
			chart, err := astro.Calculate(astro.BirthData{
				Date:     c.String("date"),
				Time:     c.String("time"),
				Location: c.String("location"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(struct {
				Chart           *astro.Chart `json:"chart"`
				CurrentTransits []string     `json:"current_transits"`
			}{chart, astro.CurrentTransits(time.Now())})
		},
	}
}

// energyCmd creates the energy command.
func energyCmd() *cli.Command {
	return &cli.Command{
		Name:      "energy",
		Usage:     "Classify text into a sign-based energy signature",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "cumulative", Aliases: []string{"c"}, Usage: "Treat each argument (or stdin line) as a separate response"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("cumulative") {
				responses, err := gatherResponses(c)
				if err != nil {
					return outputError(err)
				}
				return outputJSON(energy.AnalyzeCumulative(responses))
			}

			text, err := gatherText(c)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(energy.Analyze(text))
		},
	}
}

// depthCmd creates the depth command.
func depthCmd() *cli.Command {
	return &cli.Command{
		Name:      "depth",
		Usage:     "Score a response for depth, authenticity, and readiness",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			text, err := gatherText(c)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(energy.AnalyzeDepth(text))
		},
	}
}

// analyzeCmd creates the analyze command.
func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Run a deep analysis over responses, with optional chart and cards",
		ArgsUsage: "[response...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Birth date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "time", Aliases: []string{"t"}, Usage: "Birth time (HH:MM)"},
			&cli.StringFlag{Name: "location", Aliases: []string{"l"}, Usage: "Birth location"},
			&cli.StringFlag{Name: "cards", Usage: "Comma-separated card names"},
		},
		Action: func(c *cli.Context) error {
			responses, err := gatherResponses(c)
			if err != nil {
				return outputError(err)
			}

			var chart *astro.Chart
			if c.String("date") != "" || c.String("time") != "" || c.String("location") != "" {
				chart, err = astro.Calculate(astro.BirthData{
					Date:     c.String("date"),
					Time:     c.String("time"),
					Location: c.String("location"),
				})
				if err != nil {
					return outputError(err)
				}
			}

			var cards []tarot.Card
			if names := c.String("cards"); names != "" {
				cards, err = lookupCards(tarot.BuiltinDeck(), names)
				if err != nil {
					return outputError(err)
				}
			}

			result := analysis.Perform(responses, chart, cards)
			return outputJSON(struct {
				Analysis analysis.DeepAnalysis `json:"analysis"`
				Update   analysis.EnergyUpdate `json:"energy_update"`
			}{result, analysis.DeriveEnergyUpdate(result)})
		},
	}
}

// drawCmd creates the draw command.
func drawCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "draw",
		Usage: "Draw cards from the deck",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 3, Usage: "Number of cards to draw"},
			&cli.BoolFlag{Name: "remote", Usage: "Fetch the deck from the configured catalog instead of the builtin one"},
		},
		Action: func(c *cli.Context) error {
			deck := tarot.BuiltinDeck()
			if c.Bool("remote") && cfg != nil {
				deck = loadDeck(cfg)
			}

			cards, err := deck.Draw(c.Int("count"))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(struct {
				Cards []tarot.Card `json:"cards"`
			}{cards})
		},
	}
}

// profileCmd creates the profile command.
func profileCmd() *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "Show the energy profile and daily gradient for a sign",
		ArgsUsage: "<sign>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("sign name is required"))
			}

			sign, ok := parseSign(c.Args().First())
			if !ok {
				return outputError(errors.NewInvalidInput(fmt.Sprintf("unknown sign: %s", c.Args().First())))
			}

			return outputJSON(struct {
				Sign     zodiac.Sign          `json:"sign"`
				Energy   zodiac.EnergyProfile `json:"energy"`
				Gradient zodiac.Gradient      `json:"daily_gradient"`
			}{sign, zodiac.SignEnergy(sign), zodiac.DailyGradient(time.Now())})
		},
	}
}

// readingCmd creates the reading command group for the archive.
func readingCmd(database *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "reading",
		Usage: "Manage archived readings",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List archived readings, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
				},
				Action: func(c *cli.Context) error {
					readings, err := db.ListReadings(database, c.Int("limit"))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(struct {
						Readings []*db.Reading `json:"readings"`
						Count    int           `json:"count"`
					}{readings, len(readings)})
				},
			},
			{
				Name:      "show",
				Usage:     "Show an archived reading by ID",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidInput("reading id is required"))
					}
					reading, err := db.GetReading(database, c.Args().First())
					if err != nil {
						return outputError(err)
					}
					return outputJSON(reading)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete an archived reading by ID",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidInput("reading id is required"))
					}
					id := c.Args().First()
					if err := db.DeleteReading(database, id); err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]string{"deleted": id})
				},
			},
			{
				Name:  "purge",
				Usage: "Delete all archived readings",
				Action: func(c *cli.Context) error {
					n, err := db.PurgeReadings(database)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(map[string]int64{"purged": n})
				},
			},
		},
	}
}

// webCmd creates the web command.
func webCmd(database *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the reading UI over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8474, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			var narrator reading.Narrator
			if cfg != nil {
				narrator = newNarrator(cfg)
			}
			manager := reading.NewManager(tarot.BuiltinDeck(), database, narrator)
			srv := web.NewServer(database, manager, Version, c.String("bind"), c.Int("port"))
			if err := web.Run(srv); err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if readingErr, ok := err.(*errors.ReadingError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", readingErr.Code, readingErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// gatherText joins positional arguments into a single text, falling back to
// stdin when no arguments are given.
func gatherText(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	if stdinHasData() {
		text, err := readStdin()
		if err != nil {
			return "", errors.NewInternal(err)
		}
		return text, nil
	}
	return "", nil
}

// gatherResponses treats each positional argument as one response, falling
// back to stdin lines when no arguments are given.
func gatherResponses(c *cli.Context) ([]string, error) {
	if c.NArg() > 0 {
		return c.Args().Slice(), nil
	}
	if !stdinHasData() {
		return nil, nil
	}
	text, err := readStdin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	var responses []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			responses = append(responses, line)
		}
	}
	return responses, nil
}

// parseSign resolves a sign name case-insensitively.
func parseSign(name string) (zodiac.Sign, bool) {
	for _, s := range zodiac.Signs {
		if strings.EqualFold(string(s), name) {
			return s, true
		}
	}
	return "", false
}

// lookupCards resolves comma-separated card names against the deck.
func lookupCards(deck tarot.Deck, names string) ([]tarot.Card, error) {
	var cards []tarot.Card
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		found := false
		for _, card := range deck {
			if strings.EqualFold(card.Name, name) {
				cards = append(cards, card)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.NewInvalidInput(fmt.Sprintf("unknown card: %s", name))
		}
	}
	return cards, nil
}
