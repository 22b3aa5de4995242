// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressTracker reports deployment steps. On a terminal it animates a
// spinner while a step is waiting on the network; elsewhere it only prints
// step boundaries.
type ProgressTracker struct {
	ul      *UserLog
	isTTY   bool
	steps   map[string]*StepTracker
	spinner *progressbar.ProgressBar
	stop    context.CancelFunc
	done    chan struct{}
	mu      sync.Mutex
}

// NewProgressTracker creates a new progress tracker
func NewProgressTracker(ul *UserLog) *ProgressTracker {
	return &ProgressTracker{
		ul:    ul,
		isTTY: isTerminal(ul.Writer()),
		steps: make(map[string]*StepTracker),
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// StepStarted begins timing a new step. The caller announces the step itself.
func (pt *ProgressTracker) StepStarted(step string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	st := NewStepTracker(pt.ul, constants.StepWarnAfter)
	st.begin(step)
	pt.steps[step] = st
}

// WaitingFor animates a spinner until the step completes or fails.
func (pt *ProgressTracker) WaitingFor(step string, what string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if !pt.isTTY || pt.spinner != nil {
		return
	}
	bar := progressbar.NewOptions(
		-1,
		progressbar.OptionSetWriter(pt.ul.Writer()),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(fmt.Sprintf("[[cyan]]%s[[reset]]", what)),
		progressbar.OptionClearOnFinish(),
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	pt.spinner, pt.stop, pt.done = bar, cancel, done
	st := pt.steps[step]

	go func() {
		defer close(done)
		ticker := time.NewTicker(constants.SpinnerRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = bar.Add(1)
				if st != nil && st.CheckWarn() {
					_ = bar.RenderBlank()
				}
			}
		}
	}()
}

// StepCompleted marks a step as completed
func (pt *ProgressTracker) StepCompleted(step string, detail string) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.stopSpinner()
	if st, ok := pt.steps[step]; ok {
		st.Complete(detail)
		delete(pt.steps, step)
	}
}

// StepFailed marks a step as failed
func (pt *ProgressTracker) StepFailed(step string, err error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.stopSpinner()
	if st, ok := pt.steps[step]; ok {
		st.Failed(err.Error())
		delete(pt.steps, step)
	}
}

func (pt *ProgressTracker) stopSpinner() {
	if pt.spinner == nil {
		return
	}
	pt.stop()
	<-pt.done
	_ = pt.spinner.Finish()
	pt.spinner, pt.stop, pt.done = nil, nil, nil
}
