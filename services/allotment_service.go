package services

import (
	"errors"
	"fmt"

	"resort-backend/models"
	"resort-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllotmentService is the only writer of the room<->guest relationship. Every
// operation runs in one transaction; the involved room rows are locked with
// FOR UPDATE so two concurrent allotments cannot both succeed.
type AllotmentService struct {
	DB *gorm.DB
}

func NewAllotmentService(db *gorm.DB) *AllotmentService {
	return &AllotmentService{DB: db}
}

// lockForUpdate adds FOR UPDATE row locking. sqlite has no locking clause
// (its writes are serialized anyway), so it is skipped there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AllotRoom assigns an available room to a guest for the given number of
// days. days comes in as a pointer so an absent value fails the same
// precondition as a non-positive one.
func (s *AllotmentService) AllotRoom(guestID, roomID uint, days *int) (*models.Room, error) {
	if days == nil || *days <= 0 {
		return nil, utils.BadRequest("Days must be greater than zero")
	}

	var guest models.Guest
	var room models.Room

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, guestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Guest not found with id %d", guestID)
			}
			return fmt.Errorf("failed to load guest %d: %w", guestID, err)
		}

		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Room not found with id %d", roomID)
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		var held models.Room
		err := lockForUpdate(tx).
			Where("guest_id = ?", guestID).
			First(&held).Error
		if err == nil {
			return utils.BadRequest("Guest already has an allotted room")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check rooms held by guest %d: %w", guestID, err)
		}

		if room.Status != models.RoomAvailable {
			return utils.BadRequest("Room is not available for allotment")
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Updates(map[string]interface{}{
				"guest_id":      guest.ID,
				"status":        models.RoomOccupied,
				"allotted_days": *days,
			}).Error; err != nil {
			return fmt.Errorf("failed to allot room %d: %w", room.ID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	room.GuestID = &guest.ID
	room.Guest = &guest
	room.Status = models.RoomOccupied
	room.AllottedDays = days
	return &room, nil
}

// ReleaseRoom returns the room held by the guest to available inventory.
func (s *AllotmentService) ReleaseRoom(guestID uint) (*models.Room, error) {
	var room models.Room

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).
			Where("guest_id = ?", guestID).
			First(&room).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("No room found for guest id %d", guestID)
			}
			return fmt.Errorf("failed to find room for guest %d: %w", guestID, err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Updates(map[string]interface{}{
				"guest_id":      nil,
				"status":        models.RoomAvailable,
				"allotted_days": nil,
			}).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", room.ID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	room.GuestID = nil
	room.Guest = nil
	room.Status = models.RoomAvailable
	room.AllottedDays = nil
	return &room, nil
}
