package store

import (
	"crypto/rand"
	"io"
	"path/filepath"
	"testing"

	"github.com/opencanteen/canteen/internal/db"
	"github.com/opencanteen/canteen/internal/fieldcrypt"
	"github.com/opencanteen/canteen/internal/models"
)

// newTestStore returns a store over an isolated sqlite file with its own
// random field key.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	key := make([]byte, fieldcrypt.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		t.Fatalf("random key: %v", err)
	}
	codec, err := fieldcrypt.NewCodec(key)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return New(conn, codec)
}

func count(t *testing.T, s *Store, model any) int64 {
	t.Helper()
	var n int64
	if err := s.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func mustCreateIngredient(t *testing.T, s *Store, in NewIngredient) *models.Ingredient {
	t.Helper()
	ing, err := s.CreateIngredient(in)
	if err != nil {
		t.Fatalf("create ingredient %q: %v", in.Name, err)
	}
	return ing
}

func oats() NewIngredient {
	return NewIngredient{
		Name:          "Oats",
		EnergyKcal:    389,
		Allergen:      models.AllergenGluten,
		Macronutrient: models.MacroCarbs,
		Quantity:      100,
		Unit:          "g",
		AvgPrice:      8.50,
	}
}

func milk() NewIngredient {
	return NewIngredient{
		Name:          "Milk",
		EnergyKcal:    61,
		Allergen:      models.AllergenLactose,
		Macronutrient: models.MacroProtein,
		Quantity:      200,
		Unit:          "ml",
		AvgPrice:      4.20,
	}
}
