package driver

import (
	"errors"
	"runtime"

	"lcc/internal/ast"
	"lcc/internal/diag"
	"lcc/internal/observ"
	"lcc/internal/parser"
	"lcc/internal/source"
	"lcc/internal/trace"
)

// Options configures single-file and batch parsing.
type Options struct {
	// MaxDiagnostics caps each file's Bag.
	MaxDiagnostics int

	// Std is the target standard recorded alongside results; the grammar
	// itself ignores it. Zero means standard 1.
	Std int

	// Jobs bounds batch parallelism; zero or negative uses GOMAXPROCS.
	Jobs int

	// Tracer receives one event per accepted declaration. Parallel
	// parses share it, so it must be safe for concurrent use.
	Tracer trace.Tracer

	// Cache, when set, replays stored outcomes for files whose content,
	// path, and standard match a cached payload.
	Cache *DiskCache

	// Timer, when set, records load and parse phases. It is touched
	// only from the coordinating goroutine.
	Timer *observ.Timer

	// Progress receives per-file events during ParseFiles.
	Progress ProgressSink
}

// defaultMaxDiagnostics bounds a Bag when the caller does not.
const defaultMaxDiagnostics = 256

func capDiagnostics(n int) int {
	if n <= 0 {
		return defaultMaxDiagnostics
	}
	return n
}

func (o Options) std() int {
	if o.Std <= 0 {
		return 1
	}
	return o.Std
}

func (o Options) jobs(files int) int {
	j := o.Jobs
	if j <= 0 {
		j = runtime.GOMAXPROCS(0)
	}
	return min(j, files)
}

// ParseResult is the outcome of parsing one file. Decls is nil when the
// parse failed or the outcome came from the cache; DeclCount is
// meaningful either way.
type ParseResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Path      string
	Std       int
	Decls     []ast.Expr
	DeclCount int
	Bag       *diag.Bag
	Cached    bool
}

// Ok reports whether the file parsed without errors.
func (r *ParseResult) Ok() bool {
	return !r.Bag.HasErrors()
}

// Parse loads path and runs the grammar over it.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()

	loadPhase := beginPhase(opts.Timer, "load")
	id, err := fs.Load(path)
	endPhase(opts.Timer, loadPhase, path)
	if err != nil {
		return nil, err
	}

	parsePhase := beginPhase(opts.Timer, "parse")
	res := parseLoaded(fs, fs.Get(id), opts)
	endPhase(opts.Timer, parsePhase, path)
	return res, nil
}

// ParseSource parses in-memory text registered under name.
func ParseSource(name string, src []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return parseLoaded(fs, fs.Get(id), opts)
}

func parseLoaded(fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Path:    file.Path,
		Std:     opts.std(),
		Bag:     diag.NewBag(capDiagnostics(opts.MaxDiagnostics)),
	}

	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(file.Hash, &payload); err == nil && ok && payload.Matches(file.Path, res.Std) {
			res.Cached = true
			res.DeclCount = payload.Decls
			for _, d := range payload.Diags {
				res.Bag.Add(d)
			}
			return res
		}
	}

	decls, err := parser.Parse(file, parser.Options{Tracer: opts.Tracer})
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			res.Bag.Add(diag.FromParseError(perr))
		} else {
			res.Bag.Add(diag.NewError(diag.SynParse, file.Path, source.Location{}, err.Error()))
		}
	} else {
		res.Decls = decls
		res.DeclCount = len(decls)
	}

	if opts.Cache != nil {
		// A write failure only costs the next run a reparse.
		_ = opts.Cache.Put(file.Hash, &DiskPayload{
			Schema: diskCacheSchemaVersion,
			Path:   file.Path,
			Std:    res.Std,
			Clean:  res.Ok(),
			Decls:  res.DeclCount,
			Diags:  res.Bag.Items(),
		})
	}

	return res
}

func beginPhase(t *observ.Timer, name string) int {
	if t == nil {
		return -1
	}
	return t.Begin(name)
}

func endPhase(t *observ.Timer, idx int, note string) {
	if t != nil {
		t.End(idx, note)
	}
}
