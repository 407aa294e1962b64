package eftest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eth2030/merklepartial/log"
	"github.com/eth2030/merklepartial/metrics"
)

// TestResult holds the outcome of running a single test vector.
type TestResult struct {
	File    string
	Title   string
	Index   int
	Type    string
	Passed  bool
	Skipped bool
	Error   error
}

// BatchResult holds aggregate results for a batch of tests.
type BatchResult struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  []*TestResult
}

func (b *BatchResult) add(r *TestResult) {
	b.Total++
	switch {
	case r.Skipped:
		b.Skipped++
	case r.Passed:
		b.Passed++
	default:
		b.Failed++
		b.Errors = append(b.Errors, r)
	}
}

// fileError records a fixture that could not be loaded at all.
func (b *BatchResult) fileError(file string, err error) {
	b.add(&TestResult{File: file, Error: err})
}

// DiscoverFixtures walks a directory tree and returns paths to all YAML
// files, sorted.
func DiscoverFixtures(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []string
	err = filepath.Walk(dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(fi.Name())); ext == ".yaml" || ext == ".yml" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// RunDocument runs every case of doc. file is only used to label results.
func RunDocument(file string, doc *SSZGenericDoc) []*TestResult {
	results := make([]*TestResult, 0, len(doc.TestCases))
	for i := range doc.TestCases {
		tc := &doc.TestCases[i]
		r := &TestResult{
			File:  file,
			Title: doc.Title,
			Index: i,
			Type:  tc.TypeTag(),
		}
		if tc.SSZ == nil {
			r.Skipped = true
		} else {
			r.Error = RunCase(tc)
			r.Passed = r.Error == nil
		}
		results = append(results, r)
	}
	return results
}

// RunSingleFixture loads and runs one document, recording the outcome in
// the harness metrics.
func RunSingleFixture(path string) ([]*TestResult, error) {
	start := time.Now()
	doc, err := LoadSSZGeneric(path)
	if err != nil {
		metrics.FixtureErrors.Inc()
		return nil, fmt.Errorf("load fixture %s: %w", path, err)
	}
	metrics.FixturesLoaded.Inc()

	results := RunDocument(path, doc)
	metrics.FixtureTime.ObserveSince(start)
	logFileResults(path, doc, results)
	return results, nil
}

// RunFixtureDir runs all fixture files in a directory, one after another.
func RunFixtureDir(dir string) (*BatchResult, error) {
	files, err := DiscoverFixtures(dir)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{}
	for _, file := range files {
		results, err := RunSingleFixture(file)
		if err != nil {
			batch.fileError(file, err)
			continue
		}
		for _, r := range results {
			batch.add(r)
		}
	}
	return batch, nil
}

// RunFixtureDirConcurrent runs fixtures concurrently with the given
// parallelism. Result order within the batch follows completion order.
func RunFixtureDirConcurrent(dir string, workers int) (*BatchResult, error) {
	files, err := DiscoverFixtures(dir)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = 4
	}

	type fileResult struct {
		results []*TestResult
		err     error
		file    string
	}

	ch := make(chan string, len(files))
	for _, f := range files {
		ch <- f
	}
	close(ch)

	resultsCh := make(chan fileResult, len(files))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics.ActiveWorkers.Inc()
			defer metrics.ActiveWorkers.Dec()
			for file := range ch {
				results, err := RunSingleFixture(file)
				resultsCh <- fileResult{results: results, err: err, file: file}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	batch := &BatchResult{}
	for fr := range resultsCh {
		if fr.err != nil {
			batch.fileError(fr.file, fr.err)
			continue
		}
		for _, r := range fr.results {
			batch.add(r)
		}
	}
	return batch, nil
}

func logFileResults(path string, doc *SSZGenericDoc, results []*TestResult) {
	logger := log.Default().Module("eftest")
	var passed, failed, skipped int
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
			metrics.CasesSkipped.Inc()
		case r.Passed:
			passed++
			metrics.CasesPassed.Inc()
		default:
			failed++
			metrics.CasesFailed.Inc()
			logger.Warn("case failed", "file", path, "index", r.Index, "type", r.Type, "err", r.Error)
		}
	}
	logger.Info("fixture done", "file", path, "title", doc.Title,
		"passed", passed, "failed", failed, "skipped", skipped)
}
