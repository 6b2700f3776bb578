package handlers

import (
	"net/http"

	"github.com/opencanteen/canteen/internal/store"
)

// Menu serves the weekly menu; ?weekday= and ?slot= filter by exact match.
func Menu(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := st.ListMenu(r.URL.Query().Get("weekday"), r.URL.Query().Get("slot"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
