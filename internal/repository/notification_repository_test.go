package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/sitepulse/sitepulse/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateNotification(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewNotificationRepository(db)

	notification := model.Notification{
		MonitorID: 1,
		Type:      model.EventStatusChange,
		Direction: model.NotifyOffline,
		Message:   "api is offline",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "notifications" ("monitor_id","created_at","type","direction","message") VALUES ($1,$2,$3,$4,$5) RETURNING "id"`)).
		WithArgs(notification.MonitorID, sqlmock.AnyArg(), notification.Type, notification.Direction, notification.Message).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), notification)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotifications(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		direction string
		limit     int
		offset    int
		mockSetup func(mock sqlmock.Sqlmock)
	}{
		{
			name:   "Success Without filter",
			limit:  50,
			offset: 0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "notifications"`)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				rows := sqlmock.NewRows([]string{"id", "monitor_id", "created_at", "type", "message", "monitor_name"}).
					AddRow(1, 2, time.Now(), "status_change", "api is offline", "api")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT notifications.*, monitors.name AS monitor_name FROM "notifications" JOIN monitors ON monitors.id = notifications.monitor_id ORDER BY notifications.created_at DESC LIMIT $1`)).
					WithArgs(50).
					WillReturnRows(rows)
			},
		},
		{
			name:      "Success With type filter and offset",
			eventType: "ssl_expiry",
			limit:     10,
			offset:    20,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "notifications" WHERE notifications.type = $1`)).
					WithArgs("ssl_expiry").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				rows := sqlmock.NewRows([]string{"id", "monitor_id", "created_at", "type", "message", "monitor_name"}).
					AddRow(1, 2, time.Now(), "ssl_expiry", "certificate expires in 5 days", "api")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT notifications.*, monitors.name AS monitor_name FROM "notifications" JOIN monitors ON monitors.id = notifications.monitor_id WHERE notifications.type = $1 ORDER BY notifications.created_at DESC LIMIT $2 OFFSET $3`)).
					WithArgs("ssl_expiry", 10, 20).
					WillReturnRows(rows)
			},
		},
		{
			name:      "Success With direction filter",
			eventType: "status_change",
			direction: "offline",
			limit:     20,
			offset:    0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "notifications" WHERE notifications.type = $1 AND notifications.direction = $2`)).
					WithArgs("status_change", "offline").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				rows := sqlmock.NewRows([]string{"id", "monitor_id", "created_at", "type", "direction", "message", "monitor_name"}).
					AddRow(1, 2, time.Now(), "status_change", "offline", "api is offline", "api")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT notifications.*, monitors.name AS monitor_name FROM "notifications" JOIN monitors ON monitors.id = notifications.monitor_id WHERE notifications.type = $1 AND notifications.direction = $2 ORDER BY notifications.created_at DESC LIMIT $3`)).
					WithArgs("status_change", "offline", 20).
					WillReturnRows(rows)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewNotificationRepository(db)

			tc.mockSetup(mock)

			records, total, err := repo.List(context.Background(), tc.eventType, tc.direction, tc.limit, tc.offset)

			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, int64(1), total)
			assert.Equal(t, "api", records[0].MonitorName)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLastOfType(t *testing.T) {
	sentAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		expectTime *time.Time
	}{
		{
			name: "Success Returns newest notification time",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "monitor_id", "created_at", "type"}).
					AddRow(1, 1, sentAt, "status_change")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notifications" WHERE monitor_id = $1 AND type = $2 ORDER BY created_at DESC,"notifications"."id" LIMIT $3`)).
					WithArgs(1, "status_change", 1).
					WillReturnRows(rows)
			},
			expectTime: &sentAt,
		},
		{
			name: "Success No previous notification",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notifications" WHERE monitor_id = $1 AND type = $2 ORDER BY created_at DESC,"notifications"."id" LIMIT $3`)).
					WithArgs(1, "status_change", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectTime: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewNotificationRepository(db)

			tc.mockSetup(mock)

			got, err := repo.LastOfType(context.Background(), 1, "status_change")

			require.NoError(t, err)
			if tc.expectTime == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.True(t, got.Equal(*tc.expectTime))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
