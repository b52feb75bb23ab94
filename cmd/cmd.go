// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configFlag is shared by every command that reads config.toml
func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// recommendFlags are common to both discovery strategies
func recommendFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "name",
			Usage: "Name for the output playlist (default: 'Recommendations from <input playlist>')",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "Number of recommendations to include",
			Value: 30,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output result as JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

// recommendCommand handles recommendation runs for both strategies
func recommendCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recommend",
		Aliases: []string{"rec"},
		Usage:   "Generate a playlist of recommendations from an input playlist",
		Commands: []*cli.Command{
			{
				Name:  "funnel",
				Usage: "Two-phase hit-count funnel with artist-diversity scoring",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "playlist",
					},
				},
				Flags: append(recommendFlags(),
					&cli.IntFlag{
						Name:  "fetch-limit",
						Usage: "Max number of candidate playlists to fully evaluate",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "search-results-per-track",
						Usage: "Number of playlist results per track search",
						Value: 5,
					},
				),
				Action: r.RecommendFunnel,
			},
			{
				Name:  "sample",
				Usage: "Randomized sampling with simple co-occurrence counting",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "playlist",
					},
				},
				Flags: append(recommendFlags(),
					&cli.IntFlag{
						Name:  "search-limit",
						Usage: "Max number of input tracks to sample for search",
						Value: 10,
					},
				),
				Action: r.RecommendSample,
			},
		},
	}
}

// authCommand handles Spotify authorization
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "auth",
		Usage:  "Authenticate with Spotify using OAuth2",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Auth,
	}
}

// configCommand handles configuration file management
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write a starter config.toml to the working directory",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
		},
	}
}
