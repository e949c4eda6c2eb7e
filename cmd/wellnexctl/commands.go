package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"wellnexAPI/internal/types/calendar"
	"wellnexAPI/services"
)

// Context is handed to every command's Run.
type Context struct {
	Ctx      context.Context
	Calendar *services.CalendarService
	Out      io.Writer
}

type StateCmd struct {
	User string `help:"User id." required:""`
}

func (c *StateCmd) Run(ctx *Context) error {
	resp, err := ctx.Calendar.State(ctx.Ctx, c.User)
	if err != nil {
		return err
	}
	if resp.Degraded {
		return fmt.Errorf("could not load records for %s", c.User)
	}
	return writeJSON(ctx.Out, resp.State)
}

type RecordsCmd struct {
	User string `help:"User id." required:""`
}

func (c *RecordsCmd) Run(ctx *Context) error {
	resp, err := ctx.Calendar.State(ctx.Ctx, c.User)
	if err != nil {
		return err
	}
	if resp.Degraded {
		return fmt.Errorf("could not load records for %s", c.User)
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tSTREAK\tREST\tID")
	for _, rec := range resp.Records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", rec.Date, rec.Classification(), rec.StreakValue, rec.RestValue, rec.ID)
	}
	return tw.Flush()
}

type ClassifyCmd struct {
	User string `help:"User id." required:""`
	Date string `help:"Day to classify (YYYY-MM-DD)." required:""`
	Type string `help:"streak or rest." required:"" enum:"streak,rest"`
}

func (c *ClassifyCmd) Run(ctx *Context) error {
	resp, err := ctx.Calendar.Classify(ctx.Ctx, c.User, calendar.ClassifyRequest{
		Date: c.Date,
		Type: calendar.Classification(c.Type),
	})
	if err != nil {
		return err
	}
	return writeJSON(ctx.Out, resp)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
