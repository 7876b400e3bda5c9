package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"declet/internal/driver"
	"declet/internal/pipeline"
)

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck_CleanFile(t *testing.T) {
	path := writeSource(t, "clean.decl", "int x = 5;\nString s = \"ok\";\n")

	res, err := driver.Check(context.Background(), path, driver.CheckOptions{MaxDiagnostics: 32})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok() {
		t.Fatalf("expected validated-ok, got %s with %v", res.State, res.Bag.Items())
	}
	if len(res.Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(res.Decls))
	}
	if !res.Timings.Has(pipeline.StageLex) || !res.Timings.Has(pipeline.StageCheck) {
		t.Error("phase timings missing")
	}
}

func TestCheck_StopsAtLexicalFailure(t *testing.T) {
	path := writeSource(t, "bad.decl", "int x = & 5;\n")

	res, err := driver.Check(context.Background(), path, driver.CheckOptions{MaxDiagnostics: 32})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != pipeline.StateLexedFail {
		t.Fatalf("expected lexed-fail, got %s", res.State)
	}
	if res.Decls != nil {
		t.Error("no declarations may exist after a lexical failure")
	}
	if !res.Bag.HasErrors() {
		t.Error("lexical diagnostics missing")
	}
}

func TestCheck_StopsAtSemanticFailure(t *testing.T) {
	path := writeSource(t, "dup.decl", "int x;\nint x;\n")

	res, err := driver.Check(context.Background(), path, driver.CheckOptions{MaxDiagnostics: 32})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != pipeline.StateValidatedFail {
		t.Fatalf("expected validated-fail, got %s", res.State)
	}
	if res.Bag.ErrorCount() != 1 {
		t.Fatalf("expected the duplicate-name error, got %v", res.Bag.Items())
	}
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := driver.Check(context.Background(), filepath.Join(t.TempDir(), "nope.decl"), driver.CheckOptions{})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestCheckMany_KeepsOrder(t *testing.T) {
	a := writeSource(t, "a.decl", "int a;\n")
	b := writeSource(t, "b.decl", "int b;\nint b;\n")
	c := writeSource(t, "c.decl", "double c = 1.5;\n")

	results, err := driver.CheckMany(context.Background(), []string{a, b, c}, driver.CheckOptions{
		MaxDiagnostics: 32,
		Jobs:           3,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Path != a || results[1].Path != b || results[2].Path != c {
		t.Fatal("results must keep the input order")
	}
	if !results[0].Ok() || results[1].Ok() || !results[2].Ok() {
		t.Fatalf("unexpected outcomes: %s %s %s", results[0].State, results[1].State, results[2].State)
	}
}

func TestCheck_ProgressEvents(t *testing.T) {
	path := writeSource(t, "ev.decl", "int x;\n")
	events := make(chan pipeline.Event, 32)

	_, err := driver.Check(context.Background(), path, driver.CheckOptions{
		MaxDiagnostics: 32,
		Sink:           pipeline.ChannelSink{Ch: events},
	})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	stages := make(map[pipeline.Stage]int)
	for ev := range events {
		stages[ev.Stage]++
	}
	for _, stage := range []pipeline.Stage{pipeline.StageLex, pipeline.StageParse, pipeline.StageCheck} {
		if stages[stage] != 2 {
			t.Errorf("stage %s: expected working+done events, got %d", stage, stages[stage])
		}
	}
}

func TestCheck_CacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("declet-test")
	if err != nil {
		t.Fatal(err)
	}

	path := writeSource(t, "cached.decl", "int x = 1;\n")
	opts := driver.CheckOptions{MaxDiagnostics: 32, Cache: cache}

	first, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Fatal("first run cannot be served from cache")
	}

	second, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache || !second.Ok() {
		t.Fatalf("second run should hit the cache: fromCache=%v state=%s", second.FromCache, second.State)
	}
}

func TestCheck_CacheSkipsBrokenRuns(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := driver.OpenDiskCache("declet-test")
	if err != nil {
		t.Fatal(err)
	}

	path := writeSource(t, "broken.decl", "int x;\nint x;\n")
	opts := driver.CheckOptions{MaxDiagnostics: 32, Cache: cache}

	if _, err := driver.Check(context.Background(), path, opts); err != nil {
		t.Fatal(err)
	}
	// a broken outcome is never replayed from cache; diagnostics must be
	// reproduced by a real run
	second, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.FromCache {
		t.Fatal("broken runs must not be served from cache")
	}
	if !second.Bag.HasErrors() {
		t.Fatal("diagnostics missing on the rerun")
	}
}
