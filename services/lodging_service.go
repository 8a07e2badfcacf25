// services/lodging_service.go
package services

import (
	"strings"

	"cruise-backend/models"

	"gorm.io/gorm"
)

type LodgingService struct {
	DB *gorm.DB
}

func NewLodgingService(db *gorm.DB) *LodgingService {
	return &LodgingService{DB: db}
}

// List returns the lodging directory, optionally filtered by commune
// (case-insensitive exact match).
func (s *LodgingService) List(commune string) ([]models.Lodging, error) {
	var lodgings []models.Lodging
	q := s.DB.Order("commune, name")
	if c := strings.TrimSpace(commune); c != "" {
		q = q.Where("LOWER(commune) = ?", strings.ToLower(c))
	}
	err := q.Find(&lodgings).Error
	return lodgings, err
}

func (s *LodgingService) GetByID(id int) (models.Lodging, error) {
	var lodging models.Lodging
	err := s.DB.First(&lodging, id).Error
	return lodging, err
}
