package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

func (a *app) querySupervisorCommand(c *cli.Context) error {
	args, err := requireArgs(c, 1)
	if err != nil {
		return err
	}
	engine, err := a.loadEngine(c)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, engine.FindBySupervisorName(args[0]))
}

func (a *app) queryDepartmentsCommand(c *cli.Context) error {
	args, err := requireArgs(c, 1)
	if err != nil {
		return err
	}
	engine, err := a.loadEngine(c)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, engine.ListDepartments(args[0]))
}

func (a *app) querySupervisorsCommand(c *cli.Context) error {
	args, err := requireArgs(c, 2)
	if err != nil {
		return err
	}
	engine, err := a.loadEngine(c)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, engine.ListSupervisors(args[0], args[1]))
}

func (a *app) queryReviewsCommand(c *cli.Context) error {
	args, err := requireArgs(c, 3)
	if err != nil {
		return err
	}
	engine, err := a.loadEngine(c)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, engine.GetReviews(args[0], args[1], args[2]))
}

func requireArgs(c *cli.Context, n int) ([]string, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", c.Command.Name, n, c.NArg())
	}
	return c.Args().Slice(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
