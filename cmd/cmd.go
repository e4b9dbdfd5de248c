// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// recommendCommand is the primary surface: mood text in, recommendation out.
func recommendCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "recommend",
		Aliases:   []string{"rec"},
		Usage:     "Recommend a playlist and its top tracks for a mood",
		UsageText: "spomood recommend <mood>  (e.g. spomood recommend \"relaxed and sleepy\")",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "mood",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mood",
				Aliases: []string{"m"},
				Usage:   "Mood text (alternative to the positional argument)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum playlist candidates to search",
				Value: 10,
			},
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"n"},
				Usage:   "Number of tracks to recommend",
				Value:   5,
			},
			&cli.BoolFlag{
				Name:  "no-rank",
				Usage: "Skip the scoring heuristic and take the first search result",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the raw recommendation as JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output the recommendation as Markdown",
			},
		},
		Action: r.Recommend,
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Spotify authorization",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Run the one-time browser flow to capture a refresh token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "no-save",
						Usage: "Print the refresh token instead of writing it to the config file",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Verify the stored credentials by performing a token refresh",
				Action: r.AuthStatus,
			},
		},
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml to the working directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
