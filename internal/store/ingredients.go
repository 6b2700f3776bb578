package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/opencanteen/canteen/internal/models"
)

// NewIngredient is the input for CreateIngredient. All fields are required.
type NewIngredient struct {
	Name          string
	EnergyKcal    int
	Allergen      models.Allergen
	Macronutrient models.Macronutrient
	Quantity      float64
	Unit          string
	AvgPrice      float64
}

func (in NewIngredient) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: ingredient name is required", ErrBadRequest)
	case strings.TrimSpace(in.Unit) == "":
		return fmt.Errorf("%w: unit is required", ErrBadRequest)
	case !in.Allergen.Valid():
		return fmt.Errorf("%w: unknown allergen %q", ErrBadRequest, in.Allergen)
	case !in.Macronutrient.Valid():
		return fmt.Errorf("%w: unknown macronutrient %q", ErrBadRequest, in.Macronutrient)
	case in.EnergyKcal < 0:
		return fmt.Errorf("%w: energy value must not be negative", ErrBadRequest)
	case in.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", ErrBadRequest)
	case in.AvgPrice < 0:
		return fmt.Errorf("%w: price must not be negative", ErrBadRequest)
	}
	return nil
}

// ListIngredients returns all ingredients ordered by name.
func (s *Store) ListIngredients() ([]models.Ingredient, error) {
	var out []models.Ingredient
	if err := s.db.Order("name").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// CreateIngredient inserts a new ingredient; a taken name is a conflict.
func (s *Store) CreateIngredient(in NewIngredient) (*models.Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Ingredient{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, translate(err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: ingredient %q already exists", ErrConflict, in.Name)
	}

	ing := models.Ingredient{
		Name:          in.Name,
		EnergyKcal:    in.EnergyKcal,
		Allergen:      in.Allergen,
		Macronutrient: in.Macronutrient,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		AvgPrice:      in.AvgPrice,
	}
	if err := s.db.Create(&ing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: ingredient %q already exists", ErrConflict, in.Name)
		}
		return nil, translate(err)
	}
	return &ing, nil
}
