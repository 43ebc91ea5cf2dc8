package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecomputeHandler struct{ mock.Mock }

func (m *MockRecomputeHandler) Handle(ctx context.Context, cmd commands.RecomputePrioritiesCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAssignNextHandler struct{ mock.Mock }

func (m *MockAssignNextHandler) Handle(
	ctx context.Context,
	cmd commands.AssignNextOrderCommand,
) (commands.AssignOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AssignOrderResult), args.Error(1)
}

// recordingHandler counts error records.
type recordingHandler struct {
	slog.Handler
	errors *int
}

func newRecordingLogger() (*slog.Logger, *int) {
	count := 0
	return slog.New(recordingHandler{Handler: slog.NewTextHandler(io.Discard, nil), errors: &count}), &count
}

func (h recordingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		*h.errors++
	}
	return h.Handler.Handle(ctx, r)
}

func (h recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return recordingHandler{Handler: h.Handler.WithAttrs(attrs), errors: h.errors}
}

func (h recordingHandler) WithGroup(name string) slog.Handler {
	return recordingHandler{Handler: h.Handler.WithGroup(name), errors: h.errors}
}

func TestPriorityRefreshJob_Run(t *testing.T) {
	logger, errCount := newRecordingLogger()
	handler := new(MockRecomputeHandler)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("commands.RecomputePrioritiesCommand")).Return(nil).Once()

	NewPriorityRefreshJob(handler, "0 * * * * *", logger).Run()

	handler.AssertExpectations(t)
	assert.Equal(t, 0, *errCount)
}

func TestPriorityRefreshJob_RunLogsFailure(t *testing.T) {
	logger, errCount := newRecordingLogger()
	handler := new(MockRecomputeHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	NewPriorityRefreshJob(handler, "0 * * * * *", logger).Run()

	assert.Equal(t, 1, *errCount)
}

func TestPriorityRefreshJob_DisabledWithoutSchedule(t *testing.T) {
	logger, _ := newRecordingLogger()
	handler := new(MockRecomputeHandler)
	job := NewPriorityRefreshJob(handler, "", logger)

	require.NoError(t, job.Start())
	job.Stop()

	assert.False(t, job.Enabled())
	assert.Empty(t, job.cron.Entries())
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_NoSchedules_SchedulesNothing(t *testing.T) {
	logger, _ := newRecordingLogger()
	recompute := new(MockRecomputeHandler)
	assignNext := new(MockAssignNextHandler)
	jm := NewJobManager(recompute, assignNext, Schedules{}, logger)

	require.NoError(t, jm.StartAll())
	defer jm.StopAll()

	assert.Empty(t, jm.priorityRefreshJob.cron.Entries())
	assert.Empty(t, jm.autoAssignmentJob.cron.Entries())
	recompute.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestPriorityRefreshJob_InvalidSchedule(t *testing.T) {
	logger, _ := newRecordingLogger()
	job := NewPriorityRefreshJob(new(MockRecomputeHandler), "not a schedule", logger)

	assert.Error(t, job.Start())
}

func TestAutoAssignmentJob_Run(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErrors int
	}{
		{name: "assigned", err: nil, wantErrors: 0},
		{name: "no order", err: commands.ErrNoOrderFound, wantErrors: 0},
		{name: "no handlers", err: services.ErrNoHandlersAvailable, wantErrors: 0},
		{name: "unexpected", err: errors.New("db down"), wantErrors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, errCount := newRecordingLogger()
			handler := new(MockAssignNextHandler)
			result := commands.AssignOrderResult{}
			if tt.err == nil {
				id, err := kernel.NewOrderID(1)
				require.NoError(t, err)
				result = commands.AssignOrderResult{OrderID: id, HandlerID: kernel.NewUUID(), HandlerName: "German Gomez"}
			}
			handler.On("Handle", mock.Anything, mock.Anything).Return(result, tt.err).Once()

			NewAutoAssignmentJob(handler, "*/5 * * * * *", logger).Run()

			handler.AssertExpectations(t)
			assert.Equal(t, tt.wantErrors, *errCount)
		})
	}
}

func TestAutoAssignmentJob_DisabledWithoutSchedule(t *testing.T) {
	logger, _ := newRecordingLogger()
	handler := new(MockAssignNextHandler)
	job := NewAutoAssignmentJob(handler, "", logger)

	require.NoError(t, job.Start())
	job.Stop()

	assert.False(t, job.Enabled())
	assert.Empty(t, job.cron.Entries())
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, _ := newRecordingLogger()
	jm := NewJobManager(new(MockRecomputeHandler), new(MockAssignNextHandler), Schedules{
		PriorityRefresh: "0 0 * * * *",
		AutoAssignment:  "0 0 * * * *",
	}, logger)

	require.NoError(t, jm.StartAll())
	assert.Len(t, jm.priorityRefreshJob.cron.Entries(), 1)
	assert.Len(t, jm.autoAssignmentJob.cron.Entries(), 1)

	jm.StopAll()
}

func TestJobManager_FailedStartStopsStartedJobs(t *testing.T) {
	logger, _ := newRecordingLogger()
	jm := NewJobManager(new(MockRecomputeHandler), new(MockAssignNextHandler), Schedules{
		PriorityRefresh: "0 0 * * * *",
		AutoAssignment:  "bogus",
	}, logger)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto assignment job")
}
