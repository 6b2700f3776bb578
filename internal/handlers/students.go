package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/opencanteen/canteen/internal/store"
)

func RegisterStudent(st *store.Store) http.HandlerFunc {
	type request struct {
		Name         string   `json:"name"`
		RA           string   `json:"ra"`
		Series       string   `json:"series"`
		Period       string   `json:"period"`
		ClassName    *string  `json:"class_name"`
		Allergies    []string `json:"allergies"`
		Hobbies      []string `json:"hobbies"`
		Difficulties []string `json:"difficulties"`
		Notes        *string  `json:"notes"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeJSON(w, r, &req) {
			return
		}
		student, err := st.RegisterStudent(store.NewStudent{
			Name:         req.Name,
			RA:           req.RA,
			Series:       req.Series,
			Period:       req.Period,
			ClassName:    req.ClassName,
			Allergies:    req.Allergies,
			Hobbies:      req.Hobbies,
			Difficulties: req.Difficulties,
			Notes:        req.Notes,
		})
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, student)
	}
}

func ListStudents(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := st.ListStudents()
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func GetStudent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		student, err := st.GetStudent(uint(id))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, student)
	}
}
