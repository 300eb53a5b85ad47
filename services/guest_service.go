package services

import (
	"errors"
	"fmt"

	"resort-backend/models"
	"resort-backend/utils"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create persists a new guest record. ID is assigned by the database and
// filled back into the pointer.
func (s *GuestService) Create(guest *models.Guest) error {
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("id").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("Guest not found with id %d", id)
		}
		return nil, fmt.Errorf("failed to load guest %d: %w", id, err)
	}
	return &guest, nil
}

// Update overwrites the four profile fields. Identity and any room
// relationship are untouched.
func (s *GuestService) Update(id uint, updated models.Guest) (*models.Guest, error) {
	var guest models.Guest

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Guest not found with id %d", id)
			}
			return fmt.Errorf("failed to load guest %d: %w", id, err)
		}

		guest.Name = updated.Name
		guest.Email = updated.Email
		guest.Phone = updated.Phone
		guest.Address = updated.Address

		if err := tx.Model(&models.Guest{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":    updated.Name,
				"email":   updated.Email,
				"phone":   updated.Phone,
				"address": updated.Address,
			}).Error; err != nil {
			return fmt.Errorf("failed to update guest %d: %w", id, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &guest, nil
}

// Delete removes a guest. If the guest currently holds a room, the room is
// released back to available inventory in the same transaction, so no room
// is ever left pointing at a deleted guest.
func (s *GuestService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("Guest not found with id %d", id)
			}
			return fmt.Errorf("failed to load guest %d: %w", id, err)
		}

		var held models.Room
		err := lockForUpdate(tx).
			Where("guest_id = ?", id).
			First(&held).Error
		if err == nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", held.ID).
				Updates(map[string]interface{}{
					"guest_id":      nil,
					"status":        models.RoomAvailable,
					"allotted_days": nil,
				}).Error; err != nil {
				return fmt.Errorf("failed to release room %d: %w", held.ID, err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check rooms held by guest %d: %w", id, err)
		}

		if err := tx.Delete(&guest).Error; err != nil {
			return fmt.Errorf("failed to delete guest %d: %w", id, err)
		}

		return nil
	})
}
