package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/jonwraymond/supervisorlookup/client"
)

func (a *app) callCommand(c *cli.Context) error {
	ctx := context.Background()

	headers, err := parsePairs(c.StringSlice("header"))
	if err != nil {
		return fmt.Errorf("invalid --header: %w", err)
	}

	conn, err := client.Dial(ctx, client.Config{
		URL:     c.String("url"),
		Headers: headers,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	if c.Bool("list") {
		tools, err := conn.ListTools(ctx)
		if err != nil {
			return err
		}
		for _, tool := range tools {
			fmt.Fprintf(c.App.Writer, "%s\t%s\n", tool.Name, tool.Description)
		}
		return nil
	}

	if c.NArg() != 1 {
		return fmt.Errorf("call: expected a tool name")
	}

	pairs, err := parsePairs(c.StringSlice("arg"))
	if err != nil {
		return fmt.Errorf("invalid --arg: %w", err)
	}
	args := make(map[string]any, len(pairs))
	for k, v := range pairs {
		args[k] = v
	}

	result, err := conn.Call(ctx, c.Args().First(), args)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, result)
}

// parsePairs splits key=value strings. Values may contain '='.
func parsePairs(items []string) (map[string]string, error) {
	out := make(map[string]string, len(items))
	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%q is not key=value", item)
		}
		out[key] = value
	}
	return out, nil
}
