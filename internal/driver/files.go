package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lcc/internal/diag"
	"lcc/internal/source"
)

// ExpandPaths resolves file and directory arguments into a sorted,
// de-duplicated list of source paths. Directories are walked recursively
// for *.lc entries; explicit files are kept as given.
func ExpandPaths(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		p = filepath.ToSlash(filepath.Clean(p))
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".lc") {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(files)
	return files, nil
}

// ParseFiles parses every path into one shared FileSet, fanning the
// grammar out over opts.Jobs goroutines. Results come back in paths
// order. A file that cannot be read becomes an IO diagnostic in its own
// result; the returned error reports context cancellation only.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []ParseResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	for _, path := range paths {
		emit(opts.Progress, Event{Path: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Preload sequentially: the FileSet is not safe for concurrent
	// writes, and load order fixes the FileIDs.
	loadPhase := beginPhase(opts.Timer, "load")
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		emit(opts.Progress, Event{Path: path, Stage: StageLoad, Status: StatusWorking})
		start := time.Now()
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			emit(opts.Progress, Event{Path: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(start)})
			continue
		}
		fileIDs[path] = id
		emit(opts.Progress, Event{Path: path, Stage: StageLoad, Status: StatusDone, Elapsed: time.Since(start)})
	}
	endPhase(opts.Timer, loadPhase, fmt.Sprintf("%d files", len(paths)))

	results := make([]ParseResult, len(paths))

	parsePhase := beginPhase(opts.Timer, "parse")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			emit(opts.Progress, Event{Path: path, Stage: StageParse, Status: StatusWorking})

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(capDiagnostics(opts.MaxDiagnostics))
				bag.Add(diag.FromReadError(path, loadErr))
				results[i] = ParseResult{FileSet: fileSet, Path: path, Std: opts.std(), Bag: bag}
				emit(opts.Progress, Event{Path: path, Stage: StageParse, Status: StatusError, Err: loadErr, Elapsed: time.Since(start)})
				return nil
			}

			// Each index is written by exactly one goroutine.
			res := parseLoaded(fileSet, fileSet.Get(fileIDs[path]), opts)
			results[i] = *res

			status := StatusDone
			if !res.Ok() {
				status = StatusError
			}
			emit(opts.Progress, Event{Path: path, Stage: StageParse, Status: status, Elapsed: time.Since(start)})
			return nil
		})
	}

	err := g.Wait()
	endPhase(opts.Timer, parsePhase, fmt.Sprintf("%d files", len(paths)))
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
