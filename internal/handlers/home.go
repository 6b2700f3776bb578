package handlers

import "net/http"

// Home serves a short integration guide so the root URL is self-describing.
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"title":   "Canteen API",
		"version": "1.0.0",
		"how_to_use": []string{
			"Create base ingredients via POST /ingredients.",
			"Compose dishes from existing ingredient ids via POST /dishes.",
			"Read the weekly menu via GET /menu, filtering with ?weekday= and ?slot=.",
			"Register students via POST /students.",
		},
		"resources": []map[string]string{
			{"method": "GET", "path": "/ingredients", "description": "List ingredients ordered by name."},
			{"method": "POST", "path": "/ingredients", "description": "Create an ingredient; all fields required."},
			{"method": "GET", "path": "/dishes", "description": "List dishes with ingredient lines and menu entries."},
			{"method": "POST", "path": "/dishes", "description": "Create a dish from existing ingredients, optionally scheduling it."},
			{"method": "GET", "path": "/menu", "description": "Weekly menu; ?weekday= and ?slot= filter by exact match."},
			{"method": "POST", "path": "/students", "description": "Register a student with class, allergies, hobbies and difficulties."},
			{"method": "GET", "path": "/students/{id}", "description": "One student with class and child lists."},
			{"method": "GET", "path": "/students/{id}/qr.png", "description": "Badge QR carrying the RA fingerprint."},
		},
		"notes": []string{
			"Numeric values take two decimal places and must not be negative.",
			"Student name and RA are encrypted at rest; responses carry plaintext.",
		},
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
