package config

import (
	"path/filepath"
	"testing"

	"resort-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

func TestSeedRooms(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedRooms(db))

	var rooms []models.Room
	require.NoError(t, db.Order("room_number").Find(&rooms).Error)
	require.Len(t, rooms, 15)
	for i, room := range rooms {
		assert.Equal(t, i+1, room.RoomNumber)
		assert.Equal(t, models.RoomAvailable, room.Status)
		assert.Nil(t, room.GuestID)
		assert.Nil(t, room.AllottedDays)
	}
}

func TestSeedRoomsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedRooms(db))
	require.NoError(t, SeedRooms(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.EqualValues(t, 15, count)
}

func TestSeedRoomsSkipsNonEmptyStore(t *testing.T) {
	db := newTestDB(t)

	existing := models.Room{RoomNumber: 100, Status: models.RoomAvailable}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, SeedRooms(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
