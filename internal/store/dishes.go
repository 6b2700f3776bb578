package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/opencanteen/canteen/internal/models"
)

// NewDishLine references an existing ingredient by id with the quantity and
// unit it is used at in this dish.
type NewDishLine struct {
	IngredientID uint
	Quantity     float64
	Unit         string
}

// NewMenuEntry schedules the dish on a weekday at a meal slot.
type NewMenuEntry struct {
	Weekday string
	Slot    string
}

// NewDish is the input for CreateDish. Lines must not be empty; Menu may be.
type NewDish struct {
	Name        string
	Description *string
	Lines       []NewDishLine
	Menu        []NewMenuEntry
}

// ListDishes returns all dishes ordered by name, each with its ingredient
// lines joined to their ingredients and its menu entries.
func (s *Store) ListDishes() ([]models.Dish, error) {
	var out []models.Dish
	err := s.db.
		Preload("Ingredients.Ingredient").
		Preload("Menu").
		Order("name").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// CreateDish creates the dish aggregate — the dish row, one line per
// ingredient and one menu entry per (weekday, slot) — in a single
// transaction. An unknown ingredient id, a duplicate name, or any constraint
// failure rolls the whole aggregate back.
func (s *Store) CreateDish(in NewDish) (*models.Dish, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: dish name is required", ErrBadRequest)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrBadRequest)
	}

	var full models.Dish
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Dish{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: dish %q already exists", ErrConflict, in.Name)
		}

		dish := models.Dish{Name: in.Name, Description: in.Description}
		if err := tx.Create(&dish).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: dish %q already exists", ErrConflict, in.Name)
			}
			return err
		}

		for _, ln := range in.Lines {
			var ing models.Ingredient
			if err := tx.First(&ing, ln.IngredientID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: ingredient id %d", ErrNotFound, ln.IngredientID)
				}
				return err
			}
			line := models.DishIngredient{
				DishID:       dish.ID,
				IngredientID: ing.ID,
				Quantity:     ln.Quantity,
				Unit:         ln.Unit,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		for _, m := range in.Menu {
			entry := models.MenuEntry{DishID: dish.ID, Weekday: m.Weekday, Slot: m.Slot}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		return tx.
			Preload("Ingredients.Ingredient").
			Preload("Menu").
			First(&full, dish.ID).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &full, nil
}
