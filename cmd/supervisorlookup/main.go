// Command supervisorlookup serves supervisor review lookups over MCP and
// runs them from the command line.
//
//	supervisorlookup serve --data data/comments_data.json
//	supervisorlookup serve --transport http --addr :8080
//	supervisorlookup query --data data/comments_data.json departments 北京大学
//	supervisorlookup call --url http://localhost:8080/mcp --arg name=何凯明 search_supervisor_by_name
package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jonwraymond/supervisorlookup/config"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// dataFlag is declared on the root and on each command that loads records,
// so it works before or after the command name.
func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "data",
		Usage: "Path to the review records JSON file",
	}
}

func newApp(w io.Writer) *cli.App {
	a := &app{}

	return &cli.App{
		Name:   "supervisorlookup",
		Usage:  "Look up academic supervisor reviews",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				EnvVars: []string{"SUPERVISORLOOKUP_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
			dataFlag(),
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the lookup tools over MCP",
				Action: a.serveCommand,
				Flags: []cli.Flag{
					dataFlag(),
					&cli.StringFlag{
						Name:  "transport",
						Usage: "MCP transport (stdio, http)",
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address for http transport",
					},
				},
			},
			{
				Name:  "query",
				Usage: "Run a lookup against the local records and print the result as JSON",
				Flags: []cli.Flag{dataFlag()},
				Subcommands: []*cli.Command{
					{
						Name:      "supervisor",
						Usage:     "Find reviews by supervisor name",
						ArgsUsage: "<name>",
						Action:    a.querySupervisorCommand,
					},
					{
						Name:      "departments",
						Usage:     "List the departments of an institution",
						ArgsUsage: "<institution>",
						Action:    a.queryDepartmentsCommand,
					},
					{
						Name:      "supervisors",
						Usage:     "List the supervisors of a department",
						ArgsUsage: "<institution> <department>",
						Action:    a.querySupervisorsCommand,
					},
					{
						Name:      "reviews",
						Usage:     "Get the reviews of a supervisor",
						ArgsUsage: "<institution> <department> <supervisor>",
						Action:    a.queryReviewsCommand,
					},
				},
			},
			{
				Name:      "call",
				Usage:     "Call a tool on a running server",
				ArgsUsage: "<tool>",
				Action:    a.callCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Aliases:  []string{"u"},
						Usage:    "Server URL (http(s):// or sse://)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "header",
						Usage: "HTTP header as key=value (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:    "arg",
						Aliases: []string{"a"},
						Usage:   "Tool argument as key=value (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "list",
						Usage: "List the server's tools instead of calling one",
					},
				},
			},
		},
	}
}

// app carries state resolved in Before to the command actions.
type app struct {
	cfg config.Config
}
