package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/opencanteen/canteen/internal/store"
)

// StudentQR renders a student's badge as a QR PNG. The code carries the RA
// fingerprint, never the plaintext RA, so a scanned badge can be matched
// against the roster without exposing the identifier.
func StudentQR(st *store.Store) http.HandlerFunc {
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

		png, err := qrcode.Encode(student.RAHash, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
