package pipeline

import (
	"errors"
	"fmt"
	"time"

	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/lexer"
	"declet/internal/parser"
	"declet/internal/sema"
	"declet/internal/source"
	"declet/internal/token"
)

var (
	// ErrNoSource is returned by phase runs before any source was loaded.
	ErrNoSource = errors.New("pipeline: no source loaded")
	// ErrPrerequisite is returned when a phase is requested out of order.
	// The controller state is left untouched.
	ErrPrerequisite = errors.New("pipeline: prerequisite phase has not completed successfully")
)

// Options configures a Controller.
type Options struct {
	// MaxDiagnostics bounds each phase's bag. Zero means the default cap.
	MaxDiagnostics int
	// Sink receives progress events. May be nil.
	Sink ProgressSink
	// Reserved overrides the semantic reserved-name set. Nil means the
	// built-in set.
	Reserved map[string]struct{}
}

const defaultMaxDiagnostics = 256

// Controller owns the three analysis phases for a single source and
// enforces their ordering: syntax runs only on a clean lexical result,
// semantics only on a clean syntax result. Loading new source resets
// everything.
type Controller struct {
	opts Options

	fs     *source.FileSet
	fileID source.FileID
	loaded bool

	state  State
	tokens []token.Token
	decls  []ast.Declaration

	lexBag   *diag.Bag
	parseBag *diag.Bag
	semaBag  *diag.Bag

	timings Timings
}

// NewController returns a controller with no source loaded.
func NewController(opts Options) *Controller {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = defaultMaxDiagnostics
	}
	return &Controller{
		opts: opts,
		fs:   source.NewFileSet(),
	}
}

// LoadSource installs in-memory content under a display name and resets the
// controller to StateIdle.
func (c *Controller) LoadSource(name string, content []byte) {
	c.fileID = c.fs.AddVirtual(name, content)
	c.loaded = true
	c.reset()
}

// LoadFile reads, normalizes and installs a file from disk, then resets the
// controller to StateIdle. On read failure the previous source (if any)
// stays loaded and the state is unchanged.
func (c *Controller) LoadFile(path string) error {
	id, err := c.fs.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", diag.IOLoadFileError.ID(), err)
	}
	c.fileID = id
	c.loaded = true
	c.reset()
	return nil
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.tokens = nil
	c.decls = nil
	c.lexBag = nil
	c.parseBag = nil
	c.semaBag = nil
	c.timings = Timings{}
}

// State returns the phase-ordering state.
func (c *Controller) State() State { return c.state }

// File returns the currently loaded file, or nil.
func (c *Controller) File() *source.File {
	if !c.loaded {
		return nil
	}
	return c.fs.Get(c.fileID)
}

// FileSet exposes the controller's file set for span resolution.
func (c *Controller) FileSet() *source.FileSet { return c.fs }

// Tokens returns the token stream of the last clean lexical run, EOF
// included. Nil after a failed run.
func (c *Controller) Tokens() []token.Token { return c.tokens }

// Decls returns the declarations of the last clean syntax run.
func (c *Controller) Decls() []ast.Declaration { return c.decls }

// Timings returns phase durations recorded so far.
func (c *Controller) Timings() Timings { return c.timings }

// Diagnostics merges all phase bags into one sorted bag.
func (c *Controller) Diagnostics() *diag.Bag {
	out := diag.NewBag(3 * c.opts.MaxDiagnostics)
	out.Merge(c.lexBag)
	out.Merge(c.parseBag)
	out.Merge(c.semaBag)
	out.Sort()
	return out
}

// RunLexical tokenizes the loaded source. It is valid from any state and
// replaces every artifact of previous runs. Tokens are kept only when the
// run produced no errors.
func (c *Controller) RunLexical() (*diag.Bag, error) {
	if !c.loaded {
		return nil, ErrNoSource
	}

	c.reset()
	c.event(StageLex, StatusWorking, nil, 0)
	started := time.Now()

	bag := diag.NewBag(c.opts.MaxDiagnostics)
	lx := lexer.New(c.fs.Get(c.fileID), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		t := lx.Next()
		tokens = append(tokens, t)
		if t.Kind == token.EOF {
			break
		}
	}
	bag.Sort()
	c.lexBag = bag
	c.timings.Set(StageLex, time.Since(started))

	if bag.HasErrors() {
		c.state = StateLexedFail
		c.event(StageLex, StatusError, nil, c.timings.Duration(StageLex))
		return bag, nil
	}
	c.tokens = tokens
	c.state = StateLexedOk
	c.event(StageLex, StatusDone, nil, c.timings.Duration(StageLex))
	return bag, nil
}

// RunSyntax parses the tokens of a clean lexical run. Any other state
// yields ErrPrerequisite and leaves the controller untouched.
func (c *Controller) RunSyntax() (*diag.Bag, error) {
	if !c.loaded {
		return nil, ErrNoSource
	}
	if !c.state.CanRunSyntax() {
		return nil, ErrPrerequisite
	}

	c.event(StageParse, StatusWorking, nil, 0)
	started := time.Now()

	bag := diag.NewBag(c.opts.MaxDiagnostics)
	res := parser.Parse(c.tokens, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: uint(c.opts.MaxDiagnostics),
	})
	bag.Sort()
	c.parseBag = bag
	c.timings.Set(StageParse, time.Since(started))

	if bag.HasErrors() {
		c.decls = nil
		c.state = StateParsedFail
		c.event(StageParse, StatusError, nil, c.timings.Duration(StageParse))
		return bag, nil
	}
	c.decls = res.Decls
	c.state = StateParsedOk
	c.event(StageParse, StatusDone, nil, c.timings.Duration(StageParse))
	return bag, nil
}

// RunSemantic checks the declarations of a clean syntax run. Any other
// state yields ErrPrerequisite and leaves the controller untouched.
func (c *Controller) RunSemantic() (*diag.Bag, error) {
	if !c.loaded {
		return nil, ErrNoSource
	}
	if !c.state.CanRunSemantic() {
		return nil, ErrPrerequisite
	}

	c.event(StageCheck, StatusWorking, nil, 0)
	started := time.Now()

	bag := diag.NewBag(c.opts.MaxDiagnostics)
	sema.Check(c.decls, sema.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Reserved: c.opts.Reserved,
	})
	bag.Sort()
	c.semaBag = bag
	c.timings.Set(StageCheck, time.Since(started))

	if bag.HasErrors() {
		c.state = StateValidatedFail
		c.event(StageCheck, StatusError, nil, c.timings.Duration(StageCheck))
		return bag, nil
	}
	c.state = StateValidatedOk
	c.event(StageCheck, StatusDone, nil, c.timings.Duration(StageCheck))
	return bag, nil
}

func (c *Controller) event(stage Stage, status Status, err error, elapsed time.Duration) {
	if c.opts.Sink == nil {
		return
	}
	var file string
	if f := c.File(); f != nil {
		file = f.Path
	}
	c.opts.Sink.OnEvent(Event{
		File:    file,
		Stage:   stage,
		Status:  status,
		Err:     err,
		Elapsed: elapsed,
	})
}
