package handlers

import (
	"net/http"

	"github.com/opencanteen/canteen/internal/store"
)

func ListDishes(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := st.ListDishes()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func CreateDish(st *store.Store) http.HandlerFunc {
	type line struct {
		IngredientID uint    `json:"ingredient_id"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}
	type entry struct {
		Weekday string `json:"weekday"`
		Slot    string `json:"slot"`
	}
	type request struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Ingredients []line  `json:"ingredients"`
		Menu        []entry `json:"menu"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeJSON(w, r, &req) {
			return
		}

		in := store.NewDish{Name: req.Name, Description: req.Description}
		for _, l := range req.Ingredients {
			in.Lines = append(in.Lines, store.NewDishLine{
				IngredientID: l.IngredientID,
				Quantity:     l.Quantity,
				Unit:         l.Unit,
			})
		}
		for _, m := range req.Menu {
			in.Menu = append(in.Menu, store.NewMenuEntry{Weekday: m.Weekday, Slot: m.Slot})
		}

		dish, err := st.CreateDish(in)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dish)
	}
}
