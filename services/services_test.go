package services

import (
	"path/filepath"
	"testing"

	"resort-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "resort.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Guest{}, &models.Room{}))
	return db
}

func createGuest(t *testing.T, db *gorm.DB, name string) models.Guest {
	t.Helper()

	guest := models.Guest{
		Name:    name,
		Email:   name + "@example.com",
		Phone:   "555-0100",
		Address: "1 Resort Way",
	}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}

func createRoom(t *testing.T, db *gorm.DB, number int) models.Room {
	t.Helper()

	room := models.Room{RoomNumber: number, Status: models.RoomAvailable}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func reloadRoom(t *testing.T, db *gorm.DB, id uint) models.Room {
	t.Helper()

	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return room
}

// requireConsistent checks that a room satisfies the occupancy invariant:
// OCCUPIED iff guest reference and positive allotted days are both present.
func requireConsistent(t *testing.T, room models.Room) {
	t.Helper()

	if room.Occupied() {
		require.NotNil(t, room.GuestID)
		require.NotNil(t, room.AllottedDays)
		require.Positive(t, *room.AllottedDays)
	} else {
		require.Equal(t, models.RoomAvailable, room.Status)
		require.Nil(t, room.GuestID)
		require.Nil(t, room.AllottedDays)
	}
}
