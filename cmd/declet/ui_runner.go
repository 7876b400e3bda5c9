package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"declet/internal/driver"
	"declet/internal/pipeline"
	"declet/internal/ui"
)

type checkOutcome struct {
	results []*driver.CheckResult
	err     error
}

func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.CheckOptions) ([]*driver.CheckResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events}
		results, err := driver.CheckMany(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
