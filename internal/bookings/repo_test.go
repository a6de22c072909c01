package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/radhanandani03-png/Lotoria/pkg/db/models"
	"github.com/radhanandani03-png/Lotoria/pkg/enums"
	"github.com/radhanandani03-png/Lotoria/pkg/pagination"
)

func setupBookingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	bookings := `
CREATE TABLE IF NOT EXISTS bookings (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  mobile TEXT NOT NULL,
  address TEXT NOT NULL,
  date TEXT NOT NULL DEFAULT '',
  time_slot TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL,
  service_id TEXT,
  deal_id TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  base_amount INTEGER NOT NULL,
  discount INTEGER NOT NULL DEFAULT 0,
  total_amount INTEGER NOT NULL,
  coupon_code TEXT,
  payment_method TEXT NOT NULL,
  items TEXT,
  admin_notification TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(bookings).Error)
	return db
}

func createBooking(t *testing.T, db *gorm.DB, userID uuid.UUID, status enums.BookingStatus, total int64, created time.Time) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		ID:            uuid.New(),
		UserID:        userID,
		CustomerName:  "Test Customer",
		Mobile:        "9999999999",
		Address:       "12 Mall Road",
		Type:          enums.BookingTypeProductOrder,
		Status:        status,
		BaseAmount:    total,
		TotalAmount:   total,
		PaymentMethod: enums.PaymentMethodCOD,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func TestRepositoryListPage_pagination(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)

	userID := uuid.New()
	now := time.Now().UTC()
	older := createBooking(t, db, userID, enums.BookingStatusPending, 500, now.Add(-time.Hour))
	newer := createBooking(t, db, userID, enums.BookingStatusPending, 900, now)

	first, err := repo.ListPage(context.Background(), "", 1, nil)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, newer.ID, first[0].ID)

	cursor := &pagination.Cursor{CreatedAt: first[0].CreatedAt, ID: first[0].ID}
	second, err := repo.ListPage(context.Background(), "", 1, cursor)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, older.ID, second[0].ID)

	third, err := repo.ListPage(context.Background(), "", 1, &pagination.Cursor{CreatedAt: second[0].CreatedAt, ID: second[0].ID})
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestRepositoryListPage_statusFilter(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)

	userID := uuid.New()
	now := time.Now().UTC()
	createBooking(t, db, userID, enums.BookingStatusPending, 500, now.Add(-time.Minute))
	confirmed := createBooking(t, db, userID, enums.BookingStatusConfirmed, 900, now)

	list, err := repo.ListPage(context.Background(), "confirmed", 10, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, confirmed.ID, list[0].ID)
	assert.Equal(t, enums.BookingStatusConfirmed, list[0].Status)
}

func TestRepositoryListForUser_scopesByOwner(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)

	owner := uuid.New()
	other := uuid.New()
	now := time.Now().UTC()
	createBooking(t, db, owner, enums.BookingStatusPending, 500, now.Add(-time.Minute))
	createBooking(t, db, owner, enums.BookingStatusCompleted, 900, now)
	createBooking(t, db, other, enums.BookingStatusPending, 300, now)

	list, err := repo.ListForUser(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(900), list[0].TotalAmount)
	assert.Equal(t, int64(500), list[1].TotalAmount)
}
