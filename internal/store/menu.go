package store

import "github.com/opencanteen/canteen/internal/models"

// ListMenu returns the weekly menu ordered by (weekday, slot), each entry
// with its dish. Non-empty weekday or slot filter by exact match.
func (s *Store) ListMenu(weekday, slot string) ([]models.MenuEntry, error) {
	q := s.db.Preload("Dish.Ingredients.Ingredient").Preload("Dish").Order("weekday, slot")
	if weekday != "" {
		q = q.Where("weekday = ?", weekday)
	}
	if slot != "" {
		q = q.Where("slot = ?", slot)
	}

	var out []models.MenuEntry
	if err := q.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}
