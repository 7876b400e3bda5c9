package observ

import "time"

type phase struct {
	name    string
	note    string
	started time.Time
	ended   time.Time
}

// Timer records wall-clock durations for the analysis phases of one run.
// Begin returns an index that End later closes; a phase that was never
// ended reports a zero duration.
type Timer struct {
	phases []phase
}

func NewTimer() *Timer {
	return &Timer{phases: make([]phase, 0, 4)}
}

// Begin opens a named phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, phase{name: name, started: time.Now()})
	return len(t.phases) - 1
}

// End closes the phase at idx and attaches a note. Out-of-range indices
// are ignored.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	t.phases[idx].ended = time.Now()
	t.phases[idx].note = note
}

// PhaseReport is the serializable form of one timed phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates all timed phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the recorded phases in Begin order.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	out := Report{Phases: make([]PhaseReport, 0, len(t.phases))}
	var total time.Duration
	for _, p := range t.phases {
		var dur time.Duration
		if !p.ended.IsZero() {
			dur = p.ended.Sub(p.started)
		}
		total += dur
		out.Phases = append(out.Phases, PhaseReport{
			Name:       p.name,
			DurationMS: millis(dur),
			Note:       p.note,
		})
	}
	out.TotalMS = millis(total)
	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
