package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lcc/internal/driver"
	"lcc/internal/source"
	"lcc/internal/ui"
)

type parseOutcome struct {
	fileSet *source.FileSet
	results []driver.ParseResult
	err     error
}

func runParseFilesWithUI(ctx context.Context, title string, paths []string, opts driver.Options) (*source.FileSet, []driver.ParseResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseFiles(ctx, paths, optsCopy)
		outcomeCh <- parseOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
