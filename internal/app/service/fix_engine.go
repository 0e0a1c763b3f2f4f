package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hdllint/corelint/internal/domain/value"
)

// FixEngine applies an Aggregator's fix plans back to real files, with
// backup/recovery safety and bounded concurrency across files (spec §5:
// the driver may parallelize across documents; applying fixes is no
// different).
type FixEngine struct {
	aggregator    *Aggregator
	safetyManager *SafetyManager

	options *FixOptions

	maxConcurrency int
	semaphore      chan struct{}

	mu               sync.RWMutex
	activeOperations map[string]*FixOperation
}

// NewFixEngine creates a new fix engine with the specified options.
func NewFixEngine(aggregator *Aggregator, options *FixOptions) *FixEngine {
	if options == nil {
		options = NewFixOptions()
	}

	maxConcurrency := options.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}

	return &FixEngine{
		aggregator:       aggregator,
		safetyManager:    NewSafetyManager(options),
		options:          options,
		maxConcurrency:   maxConcurrency,
		semaphore:        make(chan struct{}, maxConcurrency),
		activeOperations: make(map[string]*FixOperation),
	}
}

// FixFiles applies the fix plan derived from each file's LintReport.
// Files whose report carries no AutoFix are skipped entirely.
func (fe *FixEngine) FixFiles(ctx context.Context, reports map[string]value.LintReport) (*FixResult, error) {
	fixResult := &FixResult{
		Operations: make(map[string]*FixOperation),
		DryRun:     fe.options.DryRun,
	}

	plans := fe.buildFixPlans(reports)
	fixResult.TotalFiles = len(plans)
	if len(plans) == 0 {
		return fixResult, nil
	}

	result, err := fe.processFiles(ctx, plans, fixResult)
	if err != nil {
		return result, err
	}

	if !fe.options.DryRun {
		if cleanupErr := fe.safetyManager.CleanupBackups(ctx, result.Operations); cleanupErr != nil {
			result.Errors = append(result.Errors, cleanupErr)
		}
	}

	return result, nil
}

// buildFixPlans derives one FixPlan per file and drops any with nothing
// to apply.
func (fe *FixEngine) buildFixPlans(reports map[string]value.LintReport) map[string]value.FixPlan {
	plans := make(map[string]value.FixPlan)
	for filename, report := range reports {
		plan := fe.aggregator.BuildFixPlan(report)
		if len(plan.Accepted) > 0 {
			plans[filename] = plan
		}
	}
	return plans
}

// processFiles processes multiple files concurrently with proper error handling.
func (fe *FixEngine) processFiles(ctx context.Context, plans map[string]value.FixPlan, result *FixResult) (*FixResult, error) {
	var wg sync.WaitGroup
	errorCh := make(chan error, len(plans))

	for filename, plan := range plans {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case fe.semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(fn string, p value.FixPlan) {
			defer wg.Done()
			defer func() { <-fe.semaphore }()

			if err := fe.processFile(ctx, fn, p, result); err != nil {
				if fe.options.StopOnError {
					errorCh <- err
					return
				}
				fe.mu.Lock()
				result.Errors = append(result.Errors, err)
				result.FilesErrored++
				fe.mu.Unlock()
			}
		}(filename, plan)
	}

	go func() {
		wg.Wait()
		close(errorCh)
	}()

	for err := range errorCh {
		if err != nil && fe.options.StopOnError {
			return result, fmt.Errorf("fix operation failed: %w", err)
		}
	}

	return result, nil
}

// processFile applies plan to filename, atomically: either every accepted
// edit lands or the file is rolled back to its backup.
func (fe *FixEngine) processFile(ctx context.Context, filename string, plan value.FixPlan, result *FixResult) error {
	operation := &FixOperation{
		Filename:  filename,
		Status:    FixStatusPending,
		StartTime: getCurrentTimestamp(),
	}

	fe.mu.Lock()
	fe.activeOperations[filename] = operation
	result.Operations[filename] = operation
	fe.mu.Unlock()

	operation.Status = FixStatusRunning

	defer func() {
		operation.EndTime = getCurrentTimestamp()
		fe.mu.Lock()
		delete(fe.activeOperations, filename)
		fe.mu.Unlock()
	}()

	if err := fe.safetyManager.PrepareFile(ctx, filename, operation); err != nil {
		operation.Status = FixStatusFailed
		operation.Error = err
		return fmt.Errorf("failed to prepare file for fixing: %w", err)
	}

	originalContent, err := readFile(filename)
	if err != nil {
		operation.Status = FixStatusFailed
		operation.Error = err
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	operation.OriginalContent = originalContent

	fixedContent, err := plan.Apply(originalContent)
	if err != nil {
		operation.Status = FixStatusFailed
		operation.Error = err
		if recoveryErr := fe.safetyManager.RecoverFile(ctx, filename, operation); recoveryErr != nil {
			return fmt.Errorf("failed to apply fixes and recovery failed: %w (original error: %v)", recoveryErr, err)
		}
		operation.Status = FixStatusRolledBack
		return fmt.Errorf("failed to apply fixes to %s (rolled back): %w", filename, err)
	}

	operation.FixedContent = fixedContent
	operation.ViolationsFixed = len(plan.Accepted)

	if !fe.options.DryRun {
		if err := writeFile(filename, fixedContent, fe.options.AtomicOperations); err != nil {
			operation.Status = FixStatusFailed
			operation.Error = err
			if recoveryErr := fe.safetyManager.RecoverFile(ctx, filename, operation); recoveryErr != nil {
				return fmt.Errorf("failed to write fixed content and recovery failed: %w (original error: %v)", recoveryErr, err)
			}
			operation.Status = FixStatusRolledBack
			return fmt.Errorf("failed to write fixed content to %s (rolled back): %w", filename, err)
		}

		if fe.options.ValidateAfterFix {
			if err := fe.safetyManager.ValidateFile(ctx, filename, operation); err != nil {
				operation.Status = FixStatusFailed
				operation.Error = err
				if recoveryErr := fe.safetyManager.RecoverFile(ctx, filename, operation); recoveryErr != nil {
					return fmt.Errorf("validation failed and recovery failed: %w (original error: %v)", recoveryErr, err)
				}
				operation.Status = FixStatusRolledBack
				return fmt.Errorf("validation failed for %s (rolled back): %w", filename, err)
			}
		}
	}

	operation.Status = FixStatusCompleted

	fe.mu.Lock()
	result.FilesFixed++
	result.ViolationsFixed += len(plan.Accepted)
	fe.mu.Unlock()

	return nil
}

// readFile reads filename's content as a string.
func readFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), nil
}

// writeFile writes content to filename, either atomically (temp file plus
// rename, same directory so the rename stays on one filesystem) or
// directly, preserving the original file's permissions either way.
func writeFile(filename, content string, atomic bool) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to get original file info: %w", err)
	}

	if !atomic {
		if err := os.WriteFile(filename, []byte(content), info.Mode()); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}

	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, fmt.Sprintf(".%s.tmp.*", filepath.Base(filename)))
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temporary file to final location: %w", err)
	}
	return nil
}

// GetActiveOperations returns the currently active fix operations.
func (fe *FixEngine) GetActiveOperations() map[string]*FixOperation {
	fe.mu.RLock()
	defer fe.mu.RUnlock()

	operations := make(map[string]*FixOperation)
	for k, v := range fe.activeOperations {
		opCopy := *v
		operations[k] = &opCopy
	}
	return operations
}

// Stop gracefully stops the fix engine, allowing active operations to complete.
func (fe *FixEngine) Stop(ctx context.Context) error {
	for {
		fe.mu.RLock()
		activeCount := len(fe.activeOperations)
		fe.mu.RUnlock()

		if activeCount == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	return nil
}

func getCurrentTimestamp() int64 {
	return time.Now().UnixMilli()
}
