package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/ytfetch/internal/api"
	"github.com/ytget/ytfetch/internal/model"
)

var (
	// ErrBusy is returned by Submit while another submission is in flight
	ErrBusy = errors.New("a download is already in progress")

	// ErrInvalidHandle is returned when the server accepts a job without an ID
	ErrInvalidHandle = errors.New("server returned no download_id")

	// ErrPollLimit is returned when MaxPolls is reached before a terminal status
	ErrPollLimit = errors.New("job did not finish within the poll limit")

	// ErrCancelled is returned when the submission is cancelled
	ErrCancelled = errors.New("download cancelled")

	// ErrTimeout is returned when the submission exceeds its time budget
	ErrTimeout = errors.New("download timed out")
)

// Controller runs one form submission at a time: create the job, poll it
// until it reaches a terminal status, and render each step.
type Controller struct {
	client JobClient
	form   FormReader
	view   StatusView
	submit SubmitControl
	logger *zap.Logger
	opts   Options

	onStateChange func(model.FormState)

	mu     sync.Mutex
	state  model.FormState
	cancel context.CancelFunc
}

// NewController creates a controller bound to the given form handles
func NewController(client JobClient, form FormReader, view StatusView, submit SubmitControl, logger *zap.Logger, opts Options) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		client: client,
		form:   form,
		view:   view,
		submit: submit,
		logger: logger,
		opts:   opts.withDefaults(),
		state:  model.FormStateIdle,
	}
}

// SetStateCallback sets the function called after every state change
func (c *Controller) SetStateCallback(callback func(model.FormState)) {
	c.mu.Lock()
	c.onStateChange = callback
	c.mu.Unlock()
}

// State returns the state of the current or last submission
func (c *Controller) State() model.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Cancel aborts the submission in flight. It reports whether there was one.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel == nil {
		return false
	}
	c.cancel()
	return true
}

// Submit runs a whole submission and blocks until it reaches a terminal
// state. The submit control is disabled for the duration. Any failure is
// rendered as "Error: <message>" and returned.
func (c *Controller) Submit(ctx context.Context) error {
	sub, err := c.Start(ctx)
	if err != nil {
		return err
	}
	return sub.Run()
}

// Submission is a claimed, not yet finished run of the controller
type Submission struct {
	c      *Controller
	ctx    context.Context
	cancel context.CancelFunc
}

// Start claims the controller and disables the submit control on the
// caller's goroutine. Run must be called on the returned Submission to
// release both. Start returns ErrBusy while another submission is active.
func (c *Controller) Start(ctx context.Context) (*Submission, error) {
	ctx, cancel, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}
	c.submit.Disable()
	return &Submission{c: c, ctx: ctx, cancel: cancel}, nil
}

// Run creates the job and polls it to a terminal state
func (s *Submission) Run() error {
	c, ctx := s.c, s.ctx
	defer s.cancel()
	defer c.submit.Enable()

	log := c.logger.With(zap.String("submission_id", uuid.NewString()))
	c.view.ShowMessage(c.opts.Messages.Starting)

	result, err := c.run(ctx, log)
	if err != nil {
		state := model.FormStateError
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				err = ErrTimeout
			} else {
				err = ErrCancelled
				state = model.FormStateCancelled
			}
		}
		c.setState(state)
		c.view.ShowMessage(fmt.Sprintf(c.opts.Messages.ErrorFormat, err.Error()))
		log.Error("download error", zap.Error(err))
		return err
	}

	c.setState(model.FormStateCompleted)
	c.view.ShowResult(result)
	log.Info("download ready",
		zap.String("download_id", result.DownloadID),
		zap.String("title", result.Title),
		zap.String("link", result.Link),
	)
	return nil
}

// begin moves the form into submitting and derives the submission context
func (c *Controller) begin(parent context.Context) (context.Context, context.CancelFunc, error) {
	c.mu.Lock()
	if !c.state.CanTransition(model.FormStateSubmitting) {
		c.mu.Unlock()
		return nil, nil, ErrBusy
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if c.opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, c.opts.Timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	c.cancel = cancel
	c.state = model.FormStateSubmitting
	callback := c.onStateChange
	c.mu.Unlock()

	if callback != nil {
		callback(model.FormStateSubmitting)
	}

	return ctx, func() {
		cancel()
		c.mu.Lock()
		c.cancel = nil
		c.mu.Unlock()
	}, nil
}

// setState records a transition and notifies the callback
func (c *Controller) setState(next model.FormState) {
	c.mu.Lock()
	if !c.state.CanTransition(next) {
		c.logger.Warn("unexpected state transition",
			zap.Stringer("from", c.state),
			zap.Stringer("to", next),
		)
	}
	c.state = next
	callback := c.onStateChange
	c.mu.Unlock()

	if callback != nil {
		callback(next)
	}
}

// run creates the job and polls it to completion
func (c *Controller) run(ctx context.Context, log *zap.Logger) (model.Result, error) {
	req := c.form.Request().Normalize()
	if err := req.Validate(); err != nil {
		return model.Result{}, err
	}

	log.Info("submitting download",
		zap.String("url", req.URL),
		zap.String("quality", string(req.Quality)),
		zap.String("file_type", string(req.FileType)),
	)

	handle, err := c.client.CreateJob(ctx, req)
	if err != nil {
		return model.Result{}, err
	}
	if !handle.Valid() {
		return model.Result{}, ErrInvalidHandle
	}

	c.setState(model.FormStateProcessing)
	title := handle.Title
	if title == "" {
		title = handle.DownloadID
	}
	c.view.ShowMessage(fmt.Sprintf(c.opts.Messages.Processing, title))
	log.Info("job created", zap.String("download_id", handle.DownloadID), zap.String("title", handle.Title))

	return c.poll(ctx, handle, log)
}

// poll fetches the job status until it is terminal. Requests are strictly
// sequential; the first one is issued without delay.
func (c *Controller) poll(ctx context.Context, handle model.JobHandle, log *zap.Logger) (model.Result, error) {
	for attempt := 1; ; attempt++ {
		snapshot, err := c.client.Status(ctx, handle.DownloadID)
		if err != nil {
			return model.Result{}, err
		}
		log.Debug("status polled",
			zap.String("download_id", handle.DownloadID),
			zap.Int("attempt", attempt),
			zap.Stringer("status", snapshot.Status),
		)

		if snapshot.Status.IsTerminal() {
			if snapshot.Status == model.JobStatusError {
				return model.Result{}, api.NewJobError(handle.DownloadID, snapshot.Detail)
			}
			return model.NewResult(handle, snapshot, c.client.DownloadURL(handle.DownloadID)), nil
		}

		if c.opts.MaxPolls > 0 && attempt >= c.opts.MaxPolls {
			return model.Result{}, ErrPollLimit
		}

		if err := wait(ctx, c.opts.PollInterval); err != nil {
			return model.Result{}, err
		}
	}
}

// wait sleeps for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
