package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

func TestNextActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status string
		stage  string
		want   []ReportAction
	}{
		{
			name:   "pending report can only be received",
			status: repository.ReportStatusPending,
			stage:  repository.ReportStageReported,
			want:   []ReportAction{ActionReceive},
		},
		{
			name:   "received report moves to processing",
			status: repository.ReportStatusReceived,
			stage:  repository.ReportStageReceived,
			want:   []ReportAction{ActionStartProcessing},
		},
		{
			name:   "processing report can be resolved",
			status: repository.ReportStatusProcessing,
			stage:  repository.ReportStageProcessing,
			want:   []ReportAction{ActionResolve},
		},
		{
			name:   "resolved report awaits customer notification",
			status: repository.ReportStatusResolved,
			stage:  repository.ReportStageResolved,
			want:   []ReportAction{ActionNotifyCustomer},
		},
		{
			name:   "notified report can be closed",
			status: repository.ReportStatusResolved,
			stage:  repository.ReportStageNotified,
			want:   []ReportAction{ActionClose},
		},
		{
			name:   "closed report is terminal",
			status: repository.ReportStatusClosed,
			stage:  repository.ReportStageNotified,
			want:   nil,
		},
		{
			name:   "unknown status has no actions",
			status: "garbage",
			stage:  "garbage",
			want:   nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NextActions(tc.status, tc.stage))
		})
	}
}

func TestCreateErrorReport(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing customer id", func(t *testing.T) {
		s, _ := newTestStorage(t)

		_, err := s.CreateErrorReport(ctx, CreateErrorReportInput{Description: "door stuck"})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects missing description", func(t *testing.T) {
		s, _ := newTestStorage(t)

		_, err := s.CreateErrorReport(ctx, CreateErrorReportInput{CustomerID: "cust-1"})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("creates pending report and fans out admin notification", func(t *testing.T) {
		s, m := newTestStorage(t)

		var created *repository.ErrorReport
		m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, report *repository.ErrorReport) error {
				created = report
				return nil
			})
		m.expectSavedNotification()

		id, err := s.CreateErrorReport(ctx, CreateErrorReportInput{
			CustomerID:   "cust-1",
			CustomerName: "Nguyen Van A",
			LockerID:     strPtr("A-1"),
			Description:  "door stuck",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, id)
		assert.Equal(t, repository.ReportStatusPending, created.Status)
		assert.Equal(t, repository.ReportStageReported, created.Stage)
	})

	t.Run("dropped notification does not fail the create", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.db.EXPECT().BeginTx(gomock.Any()).Return(nil, errors.New("pool exhausted"))

		_, err := s.CreateErrorReport(ctx, CreateErrorReportInput{
			CustomerID:   "cust-1",
			CustomerName: "Nguyen Van A",
			Description:  "door stuck",
		})

		assert.NoError(t, err)
	})
}

func TestReceiveErrorReport(t *testing.T) {
	ctx := context.Background()

	t.Run("moves pending report to received", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(&repository.ErrorReport{
			ID:     "rep-1",
			Status: repository.ReportStatusPending,
			Stage:  repository.ReportStageReported,
		}, nil)
		m.reports.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), repository.ReportStatusPending).
			DoAndReturn(func(_ context.Context, report *repository.ErrorReport, _ string) error {
				assert.Equal(t, repository.ReportStatusReceived, report.Status)
				assert.Equal(t, repository.ReportStageReceived, report.Stage)
				require.NotNil(t, report.ReceivedAt)
				require.NotNil(t, report.AdminNotes)
				assert.Equal(t, "seen by shift admin", *report.AdminNotes)
				return nil
			})

		err := s.ReceiveErrorReport(ctx, "rep-1", "seen by shift admin")

		assert.NoError(t, err)
	})

	t.Run("rejects receive on an already processed report", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(&repository.ErrorReport{
			ID:     "rep-1",
			Status: repository.ReportStatusProcessing,
			Stage:  repository.ReportStageProcessing,
		}, nil)

		err := s.ReceiveErrorReport(ctx, "rep-1", "")

		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	})

	t.Run("second admin loses the conditional update", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(&repository.ErrorReport{
			ID:     "rep-1",
			Status: repository.ReportStatusPending,
			Stage:  repository.ReportStageReported,
		}, nil)
		m.reports.EXPECT().UpdateIfStatus(gomock.Any(), gomock.Any(), repository.ReportStatusPending).
			Return(repository.ErrInvalidTransition)

		err := s.ReceiveErrorReport(ctx, "rep-1", "")

		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "concurrent update")
	})

	t.Run("unknown report id", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().GetByID(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		err := s.ReceiveErrorReport(ctx, "missing", "")

		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestNotifyCustomerAboutErrorResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps notified stage and notifies the reporter", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(&repository.ErrorReport{
			ID:         "rep-1",
			CustomerID: "cust-1",
			Status:     repository.ReportStatusResolved,
			Stage:      repository.ReportStageResolved,
		}, nil)
		m.reports.EXPECT().UpdateIfStatusAndNotStage(gomock.Any(), gomock.Any(),
			repository.ReportStatusResolved, repository.ReportStageNotified).
			DoAndReturn(func(_ context.Context, report *repository.ErrorReport, _, _ string) error {
				assert.Equal(t, repository.ReportStageNotified, report.Stage)
				require.NotNil(t, report.CustomerNotifiedAt)
				return nil
			})
		m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
		m.notifs.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, n *repository.Notification) error {
				require.NotNil(t, n.CustomerID)
				assert.Equal(t, "cust-1", *n.CustomerID)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

		err := s.NotifyCustomerAboutErrorResolution(ctx, "rep-1", "")

		assert.NoError(t, err)
	})

	t.Run("double notify is rejected by the stage guard", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(&repository.ErrorReport{
			ID:         "rep-1",
			CustomerID: "cust-1",
			Status:     repository.ReportStatusResolved,
			Stage:      repository.ReportStageNotified,
		}, nil)

		err := s.NotifyCustomerAboutErrorResolution(ctx, "rep-1", "")

		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	})
}

func TestErrorReportForwardSequence(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStorage(t)

	report := &repository.ErrorReport{
		ID:         "rep-1",
		CustomerID: "cust-1",
		Status:     repository.ReportStatusPending,
		Stage:      repository.ReportStageReported,
		CreatedAt:  time.Now().UTC(),
	}
	m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(report, nil).Times(5)
	m.reports.EXPECT().UpdateIfStatus(gomock.Any(), report, repository.ReportStatusPending).Return(nil)
	m.reports.EXPECT().UpdateIfStatus(gomock.Any(), report, repository.ReportStatusReceived).Return(nil)
	m.reports.EXPECT().UpdateIfStatus(gomock.Any(), report, repository.ReportStatusProcessing).Return(nil)
	m.reports.EXPECT().UpdateIfStatusAndNotStage(gomock.Any(), report,
		repository.ReportStatusResolved, repository.ReportStageNotified).Return(nil)
	m.reports.EXPECT().UpdateIfStage(gomock.Any(), report, repository.ReportStageNotified).Return(nil)
	m.expectSavedNotification()

	require.NoError(t, s.ReceiveErrorReport(ctx, "rep-1", "seen"))
	require.NoError(t, s.StartProcessingError(ctx, "rep-1", ""))
	require.NoError(t, s.ResolveErrorReport(ctx, "rep-1", "door motor replaced"))
	require.NoError(t, s.NotifyCustomerAboutErrorResolution(ctx, "rep-1", ""))
	require.NoError(t, s.CloseErrorReport(ctx, "rep-1"))

	assert.Equal(t, repository.ReportStatusClosed, report.Status)
	assert.Equal(t, repository.ReportStageNotified, report.Stage)

	stamps := []*time.Time{
		report.ReceivedAt,
		report.ProcessingStartedAt,
		report.ResolvedAt,
		report.CustomerNotifiedAt,
		report.ClosedAt,
	}
	for i, ts := range stamps {
		require.NotNil(t, ts, "timestamp %d missing", i)
	}
	for i := 1; i < len(stamps); i++ {
		assert.False(t, stamps[i].Before(*stamps[i-1]),
			"timestamp %d precedes timestamp %d", i, i-1)
	}
}

func TestCloseErrorReport(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStorage(t)

	m.reports.EXPECT().GetByID(gomock.Any(), "rep-1").Return(&repository.ErrorReport{
		ID:     "rep-1",
		Status: repository.ReportStatusResolved,
		Stage:  repository.ReportStageNotified,
	}, nil)
	m.reports.EXPECT().UpdateIfStage(gomock.Any(), gomock.Any(), repository.ReportStageNotified).
		DoAndReturn(func(_ context.Context, report *repository.ErrorReport, _ string) error {
			assert.Equal(t, repository.ReportStatusClosed, report.Status)
			require.NotNil(t, report.ClosedAt)
			return nil
		})

	err := s.CloseErrorReport(ctx, "rep-1")

	assert.NoError(t, err)
}
