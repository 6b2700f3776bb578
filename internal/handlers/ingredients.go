package handlers

import (
	"net/http"

	"github.com/opencanteen/canteen/internal/models"
	"github.com/opencanteen/canteen/internal/store"
)

func ListIngredients(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := st.ListIngredients()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func CreateIngredient(st *store.Store) http.HandlerFunc {
	type request struct {
		Name          string  `json:"name"`
		EnergyKcal    int     `json:"energy_kcal"`
		Allergen      string  `json:"allergen"`
		Macronutrient string  `json:"macronutrient"`
		Quantity      float64 `json:"quantity"`
		Unit          string  `json:"unit"`
		AvgPrice      float64 `json:"avg_price"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeJSON(w, r, &req) {
			return
		}
		ing, err := st.CreateIngredient(store.NewIngredient{
			Name:          req.Name,
			EnergyKcal:    req.EnergyKcal,
			Allergen:      models.Allergen(req.Allergen),
			Macronutrient: models.Macronutrient(req.Macronutrient),
			Quantity:      req.Quantity,
			Unit:          req.Unit,
			AvgPrice:      req.AvgPrice,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ing)
	}
}
