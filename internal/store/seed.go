package store

import (
	"github.com/opencanteen/canteen/internal/models"
)

// SeedSampleMenu inserts a small starter menu (oats, milk, an oatmeal dish
// served Monday at breakfast) so a fresh install has something to list.
// It is a no-op once any ingredient exists.
func (s *Store) SeedSampleMenu() error {
	var count int64
	if err := s.db.Model(&models.Ingredient{}).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count > 0 {
		return nil
	}

	oats, err := s.CreateIngredient(NewIngredient{
		Name:          "Oats",
		EnergyKcal:    389,
		Allergen:      models.AllergenGluten,
		Macronutrient: models.MacroCarbs,
		Quantity:      100,
		Unit:          "g",
		AvgPrice:      8.50,
	})
	if err != nil {
		return err
	}
	milk, err := s.CreateIngredient(NewIngredient{
		Name:          "Whole milk",
		EnergyKcal:    61,
		Allergen:      models.AllergenLactose,
		Macronutrient: models.MacroProtein,
		Quantity:      200,
		Unit:          "ml",
		AvgPrice:      4.20,
	})
	if err != nil {
		return err
	}

	desc := "Oats cooked in whole milk"
	_, err = s.CreateDish(NewDish{
		Name:        "Oatmeal",
		Description: &desc,
		Lines: []NewDishLine{
			{IngredientID: oats.ID, Quantity: 40, Unit: "g"},
			{IngredientID: milk.ID, Quantity: 200, Unit: "ml"},
		},
		Menu: []NewMenuEntry{{Weekday: "Monday", Slot: "Breakfast"}},
	})
	return err
}
