package services

import (
	"testing"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomGetAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	for number := 1; number <= 3; number++ {
		createRoom(t, db, number)
	}

	rooms, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	for i, room := range rooms {
		assert.Equal(t, i+1, room.RoomNumber)
		requireConsistent(t, room)
	}
}

func TestRoomGetAvailable(t *testing.T) {
	db := newTestDB(t)
	roomSvc := NewRoomService(db)
	allotSvc := NewAllotmentService(db)

	guest := createGuest(t, db, "alice")
	occupied := createRoom(t, db, 1)
	createRoom(t, db, 2)
	createRoom(t, db, 3)

	_, err := allotSvc.AllotRoom(guest.ID, occupied.ID, intPtr(2))
	require.NoError(t, err)

	available, err := roomSvc.GetAvailable()
	require.NoError(t, err)
	require.Len(t, available, 2)
	for _, room := range available {
		assert.Equal(t, models.RoomAvailable, room.Status)
		assert.NotEqual(t, occupied.ID, room.ID)
	}

	all, err := roomSvc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRoomGetAllPreloadsGuest(t *testing.T) {
	db := newTestDB(t)
	roomSvc := NewRoomService(db)
	allotSvc := NewAllotmentService(db)

	guest := createGuest(t, db, "alice")
	room := createRoom(t, db, 1)

	_, err := allotSvc.AllotRoom(guest.ID, room.ID, intPtr(2))
	require.NoError(t, err)

	all, err := roomSvc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Guest)
	assert.Equal(t, "alice", all[0].Guest.Name)
}
