package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hdllint/corelint/internal/app/service/parser"
	"github.com/hdllint/corelint/internal/domain/value"
)

// Driver is the ambient, multi-document orchestration layer spec §5
// assigns outside the single-document core: it owns file I/O, and may
// run the single-threaded per-document pipeline concurrently across
// documents (never within one). Every other piece of this package
// operates on one document at a time and has no opinion about files or
// concurrency at all.
type Driver struct {
	aggregator  *Aggregator
	parser      parser.Parser
	concurrency int
	log         *logrus.Logger
	runID       string
}

// NewDriver builds a Driver around an Aggregator (and therefore a
// Registry) and a parser collaborator. concurrency caps how many
// documents are parsed and linted at once; values less than 1 are
// treated as 1. Each Driver is stamped with its own run ID, carried on
// every log entry it emits, so a batch of LintFiles calls across a
// multi-process CI run can be correlated back to a single invocation.
func NewDriver(aggregator *Aggregator, p parser.Parser, concurrency int) *Driver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Driver{
		aggregator:  aggregator,
		parser:      p,
		concurrency: concurrency,
		log:         logrus.StandardLogger(),
		runID:       uuid.NewString(),
	}
}

// RunID returns this Driver's correlation ID, suitable for tagging
// external reports (CI annotations, structured log aggregation) that
// need to tie multiple log lines back to one invocation.
func (d *Driver) RunID() string { return d.runID }

func (d *Driver) fields(extra logrus.Fields) logrus.Fields {
	fields := logrus.Fields{"run_id": d.runID}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

// LintSource runs the full per-document pipeline over in-memory source,
// without touching the filesystem.
func (d *Driver) LintSource(source, filename string) (value.LintReport, error) {
	view, err := d.parser.Parse(source, filename)
	if err != nil {
		return value.LintReport{}, fmt.Errorf("parse %s: %w", filename, err)
	}
	if view.ParseError != nil {
		d.log.WithFields(d.fields(logrus.Fields{"file": filename, "error": view.ParseError})).
			Warn("parse failure: syntax-tree tier skipped for this document")
	}
	return d.aggregator.LintDocument(view), nil
}

// LintFiles reads and lints every named file, running up to
// d.concurrency documents through the pipeline at once via errgroup.
// One file's failure does not abort the others. A file that cannot be
// read is logged and gets an empty report in the returned map; an error
// returned by the parser collaborator is logged and the file is left out
// of the map. A parse failure recorded in the view's ParseError only
// skips that document's syntax-tree pass.
func (d *Driver) LintFiles(ctx context.Context, filenames []string) (map[string]value.LintReport, error) {
	reports := make(map[string]value.LintReport, len(filenames))
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(d.concurrency)

	for _, filename := range filenames {
		filename := filename
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			content, err := os.ReadFile(filename)
			if err != nil {
				d.log.WithFields(d.fields(logrus.Fields{"file": filename, "error": err})).Error("failed to read file")
				mu.Lock()
				reports[filename] = value.LintReport{Filename: filename}
				mu.Unlock()
				return nil
			}

			report, err := d.LintSource(string(content), filename)
			if err != nil {
				d.log.WithFields(d.fields(logrus.Fields{"file": filename, "error": err})).Error("internal invariant violated while linting")
				return nil
			}

			mu.Lock()
			reports[filename] = report
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}
