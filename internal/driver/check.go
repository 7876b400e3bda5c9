package driver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"declet/internal/ast"
	"declet/internal/diag"
	"declet/internal/observ"
	"declet/internal/pipeline"
	"declet/internal/source"
	"declet/internal/token"
)

// CheckOptions configures a full three-phase run.
type CheckOptions struct {
	MaxDiagnostics int
	Sink           pipeline.ProgressSink
	Cache          *DiskCache
	// Jobs bounds the number of files analyzed concurrently by CheckMany.
	// Zero means one.
	Jobs int
}

// CheckResult carries the artifacts of a full gated run over one file.
type CheckResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	State   pipeline.State
	Tokens  []token.Token
	Decls   []ast.Declaration
	Bag     *diag.Bag
	Timings pipeline.Timings
	Report  observ.Report
	// FromCache is set when a previous clean run for identical content
	// let the phases be skipped.
	FromCache bool
}

// Ok reports whether the run validated clean.
func (r *CheckResult) Ok() bool {
	return r.State == pipeline.StateValidatedOk
}

// Check runs lexical, syntax and semantic analysis over path, honoring the
// phase ordering: each later phase runs only when the one before it
// finished clean.
func Check(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctrl := pipeline.NewController(pipeline.Options{
		MaxDiagnostics: opts.MaxDiagnostics,
		Sink:           opts.Sink,
	})
	if err := ctrl.LoadFile(path); err != nil {
		return nil, err
	}

	res := &CheckResult{
		Path:    path,
		FileSet: ctrl.FileSet(),
		File:    ctrl.File(),
	}

	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(res.File.Hash, &payload)
		if err == nil && hit && payload.Schema == diskCacheSchemaVersion &&
			payload.ContentHash == res.File.Hash && !payload.Broken {
			res.State = pipeline.StateValidatedOk
			res.Bag = diag.NewBag(opts.MaxDiagnostics)
			res.FromCache = true
			return res, nil
		}
	}

	timer := observ.NewTimer()

	idx := timer.Begin(string(pipeline.StageLex))
	if _, err := ctrl.RunLexical(); err != nil {
		return nil, err
	}
	timer.End(idx, ctrl.State().String())

	if ctrl.State().CanRunSyntax() {
		idx = timer.Begin(string(pipeline.StageParse))
		if _, err := ctrl.RunSyntax(); err != nil {
			return nil, err
		}
		timer.End(idx, ctrl.State().String())
	}

	if ctrl.State().CanRunSemantic() {
		idx = timer.Begin(string(pipeline.StageCheck))
		if _, err := ctrl.RunSemantic(); err != nil {
			return nil, err
		}
		timer.End(idx, ctrl.State().String())
	}

	res.State = ctrl.State()
	res.Tokens = ctrl.Tokens()
	res.Decls = ctrl.Decls()
	res.Bag = ctrl.Diagnostics()
	res.Timings = ctrl.Timings()
	res.Report = timer.Report()

	if opts.Cache != nil {
		// Cache write failure never fails the run.
		_ = opts.Cache.Put(res.File.Hash, resultToDiskPayload(res))
	}
	return res, nil
}

// CheckMany analyzes several files concurrently, each through its own
// controller. Results keep the order of paths.
func CheckMany(ctx context.Context, paths []string, opts CheckOptions) ([]*CheckResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = 1
	}

	results := make([]*CheckResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			res, err := Check(gctx, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
