package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
)

const (
	cmdQuit    = ":quit"
	cmdHistory = ":history"
	cmdTotals  = ":totals"
	cmdHelp    = ":help"

	promptRows = 10
)

var suggestions = []prompt.Suggest{
	{Text: cmdQuit, Description: "Exit the prompt"},
	{Text: cmdHistory, Description: "Show recent reports"},
	{Text: cmdTotals, Description: "Show word totals across stored reports"},
	{Text: cmdHelp, Description: "List commands"},
}

func (a *app) repl(ctx context.Context) error {
	fmt.Fprintln(a.out, "wordstats: type text to analyze it, :help for commands")
	p := prompt.New(
		func(in string) { a.execute(ctx, in) },
		completer,
		prompt.OptionPrefix("wordstats >> "),
		prompt.OptionTitle("wordstats"),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && strings.TrimSpace(in) == cmdQuit
		}),
	)
	p.Run()
	return nil
}

func completer(d prompt.Document) []prompt.Suggest {
	w := d.GetWordBeforeCursor()
	if !strings.HasPrefix(w, ":") {
		return nil
	}
	return prompt.FilterHasPrefix(suggestions, w, true)
}

// execute handles one prompt line. Plain text is analyzed; lines starting
// with a colon are commands.
func (a *app) execute(ctx context.Context, in string) {
	in = strings.TrimSpace(in)
	if in == "" || in == cmdQuit {
		return
	}

	switch in {
	case cmdHelp:
		for _, s := range suggestions {
			fmt.Fprintf(a.out, "  %-10s %s\n", s.Text, s.Description)
		}
	case cmdHistory:
		if err := a.printHistory(ctx, promptRows); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	case cmdTotals:
		a.printTotals(ctx)
	default:
		rep := a.analyze("prompt", in)
		if err := a.record(ctx, rep); err != nil {
			a.log.Error().Err(err).Msg("record failed")
		}
		writeText(a.out, rep)
	}
}

func (a *app) printTotals(ctx context.Context) {
	if a.store == nil {
		fmt.Fprintln(a.out, "no database configured")
		return
	}
	totals, err := a.store.WordTotals(ctx, promptRows)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	writeBars(a.out, "word totals", totals)
}
