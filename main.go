package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/agentdeck/agentdeck/internal/app"
	"github.com/agentdeck/agentdeck/internal/mock"
	"github.com/agentdeck/agentdeck/sdk/agentdeck"
)

func main() {
	cliApp := &cli.App{
		Name:  "agentdeck",
		Usage: "terminal dashboard for the AgentDeck platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "AgentDeck API server URL",
				Value:   "http://localhost:8000",
				EnvVars: []string{"AGENTDECK_SERVER"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "API bearer token",
				EnvVars: []string{"AGENTDECK_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "org",
				Usage:   "organization ID to work in",
				Value:   "org-demo",
				EnvVars: []string{"AGENTDECK_ORG"},
			},
		},
		Action: runDashboard,
		Commands: []*cli.Command{
			{
				Name:  "mock",
				Usage: "run a local mock API server for development",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "port to listen on",
						Value: 8000,
					},
				},
				Action: func(c *cli.Context) error {
					return mock.NewServer(c.Int("port")).Start()
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDashboard(c *cli.Context) error {
	client := agentdeck.NewClient(c.String("server"),
		agentdeck.WithToken(c.String("token")),
		agentdeck.WithTimeout(60*time.Second),
	)

	model := app.New(client, c.String("org"))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Stream callbacks arrive on other goroutines and need the program
	// reference to deliver messages.
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
