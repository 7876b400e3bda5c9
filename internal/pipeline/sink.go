package pipeline

import "time"

// Stage names one of the controller's phases.
type Stage string

const (
	// StageLex is the lexical analysis phase.
	StageLex Stage = "lex"
	// StageParse is the syntax analysis phase.
	StageParse Stage = "parse"
	// StageCheck is the semantic analysis phase.
	StageCheck Stage = "check"
)

// Status captures progress state within a phase.
type Status string

const (
	// StatusQueued indicates the phase is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the phase is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the phase finished without errors.
	StatusDone Status = "done"
	// StatusError indicates the phase finished with errors.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the overall run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Timings holds phase durations.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Set stores a duration for the given phase.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	if t.stages == nil {
		return false
	}
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
