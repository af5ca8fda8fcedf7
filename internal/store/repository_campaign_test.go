package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

func TestCampaignRepository_GetCampaign(t *testing.T) {
	scheduled := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rows         *sqlmock.Rows
		wantErr      error
		wantSchedNil bool
	}{
		{
			name: "scheduled",
			rows: sqlmock.NewRows(campaignColumns).
				AddRow(1, "Summer Sale 2024", "VIP customers", "active", 12500, 12234, 8945, 234, 98, scheduled, "m", "o"),
		},
		{
			name: "draft without schedule",
			rows: sqlmock.NewRows(campaignColumns).
				AddRow(5, "Holiday Greetings", "All customers", "draft", 0, 0, 0, 0, 0, nil, "m", "o"),
			wantSchedNil: true,
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows(campaignColumns),
			wantErr: ErrCampaignNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewCampaignRepository(db, logger.Nop())

			mock.ExpectQuery(`SELECT (.+) FROM campaigns WHERE id = \?`).WillReturnRows(tt.rows)

			c, err := repo.GetCampaign(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantSchedNil {
				assert.Nil(t, c.ScheduledAt)
				return
			}
			require.NotNil(t, c.ScheduledAt)
			assert.Equal(t, scheduled, *c.ScheduledAt)
			assert.Equal(t, int64(8945), c.Read)
		})
	}
}

func TestCampaignRepository_CampaignTotals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(sent\), 0\)(.+) FROM campaigns`).
		WillReturnRows(sqlmock.NewRows([]string{"sent", "delivered", "replied"}).AddRow(33500, 30254, 860))

	totals, err := repo.CampaignTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CampaignTotals{Sent: 33500, Delivered: 30254, Replied: 860}, totals)
}

func TestCampaignRepository_CreateCampaign_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO campaigns`).WillReturnError(sql.ErrConnDone)

	_, err := repo.CreateCampaign(context.Background(), models.Campaign{Name: "x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestFollowUpRepository_MarkOverdue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowUpRepository(db, logger.Nop())
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE follow_ups SET status = \? WHERE status = \? AND due_at < \?`).
		WithArgs("overdue", "scheduled", now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkOverdue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestFollowUpRepository_ListFollowUps_MissingNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowUpRepository(db, logger.Nop())
	due := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM follow_ups f LEFT JOIN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "contact_id", "notes", "due_at", "status", "priority", "campaign", "contact"}).
			AddRow(1, 42, 2, "call", due, "scheduled", "high", "", "Michael Chen"))

	views, err := repo.ListFollowUps(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].CampaignName)
	assert.Equal(t, "Michael Chen", views[0].ContactName)
	assert.Equal(t, models.PriorityHigh, views[0].Priority)
}
