package services

import (
	"fmt"

	"resort-backend/models"

	"gorm.io/gorm"
)

// RoomService is the read side of the room inventory.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Guest").Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.
		Where("status = ?", models.RoomAvailable).
		Order("id").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve available rooms: %w", err)
	}
	return rooms, nil
}
