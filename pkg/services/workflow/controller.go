package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

type Controller interface {
	Start(ctx context.Context) error
	Cancel(ctx context.Context) error
}

type DefaultController struct {
	dispatcher Dispatcher
	config     RunnerConfig

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	runner     *Runner
}

func NewController(dispatcher Dispatcher, config RunnerConfig) *DefaultController {
	return &DefaultController{
		dispatcher: dispatcher,
		config:     config,
	}
}

// Start launches the hourly scheduler in the background.
func (ctrl *DefaultController) Start(ctx context.Context) error {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.runner != nil {
		return fmt.Errorf("scheduler already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	runner := NewRunner(ctrl.dispatcher, ctrl.config)
	ctrl.cancelFunc = cancel
	ctrl.runner = runner

	go runner.Run(ctx)
	return nil
}

// Cancel stops the scheduler and waits for an in-flight dispatch to finish.
func (ctrl *DefaultController) Cancel(_ context.Context) error {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.runner == nil {
		return fmt.Errorf("scheduler not running")
	}
	ctrl.cancelFunc()
	<-ctrl.runner.Done()

	ctrl.runner = nil
	ctrl.cancelFunc = nil
	return nil
}

// Progress exposes the running scheduler's reports, or nil when stopped.
func (ctrl *DefaultController) Progress() <-chan domain.RunReport {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.runner == nil {
		return nil
	}
	return ctrl.runner.Progress()
}
