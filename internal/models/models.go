package models

import "time"

// Allergen is the closed set of allergen tags an ingredient may carry.
type Allergen string

const (
	AllergenGluten   Allergen = "GLUTEN"
	AllergenLactose  Allergen = "LACTOSE"
	AllergenEgg      Allergen = "EGG"
	AllergenSoy      Allergen = "SOY"
	AllergenPeanut   Allergen = "PEANUT"
	AllergenTreeNuts Allergen = "TREE_NUTS"
	AllergenSeafood  Allergen = "SEAFOOD"
)

// Allergens lists every valid Allergen value.
var Allergens = []Allergen{
	AllergenGluten, AllergenLactose, AllergenEgg, AllergenSoy,
	AllergenPeanut, AllergenTreeNuts, AllergenSeafood,
}

func (a Allergen) Valid() bool {
	for _, v := range Allergens {
		if a == v {
			return true
		}
	}
	return false
}

// Macronutrient is the closed set of macronutrient tags.
type Macronutrient string

const (
	MacroCarbs   Macronutrient = "CARBS"
	MacroProtein Macronutrient = "PROTEIN"
	MacroFat     Macronutrient = "FAT"
)

// Macronutrients lists every valid Macronutrient value.
var Macronutrients = []Macronutrient{MacroCarbs, MacroProtein, MacroFat}

func (m Macronutrient) Valid() bool {
	for _, v := range Macronutrients {
		if m == v {
			return true
		}
	}
	return false
}

type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name          string        `gorm:"size:120;uniqueIndex;not null" json:"name"`
	EnergyKcal    int           `gorm:"not null;check:energy_kcal >= 0" json:"energy_kcal"`
	Allergen      Allergen      `gorm:"size:20;not null" json:"allergen"`
	Macronutrient Macronutrient `gorm:"size:20;not null" json:"macronutrient"`
	Quantity      float64       `gorm:"type:decimal(10,2);not null;check:quantity >= 0" json:"quantity"`
	Unit          string        `gorm:"size:20;not null" json:"unit"`
	AvgPrice      float64       `gorm:"type:decimal(10,2);not null;check:avg_price >= 0" json:"avg_price"`

	Dishes []DishIngredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Dish struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name        string  `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description,omitempty"`

	Ingredients []DishIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Menu        []MenuEntry      `gorm:"constraint:OnDelete:CASCADE" json:"menu"`
}

// DishIngredient links one ingredient into one dish with its own quantity
// and unit; the same ingredient can appear in many dishes.
type DishIngredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	DishID       uint    `gorm:"not null;index" json:"-"`
	IngredientID uint    `gorm:"not null;index" json:"-"`
	Quantity     float64 `gorm:"type:decimal(10,2);not null;check:quantity >= 0" json:"quantity"`
	Unit         string  `gorm:"size:20;not null" json:"unit"`

	Ingredient Ingredient `json:"ingredient"`
}

// MenuEntry says a dish is served on a weekday at a meal slot. Weekday and
// slot are free-form labels, not enumerations.
type MenuEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	DishID  uint   `gorm:"not null;index" json:"-"`
	Weekday string `gorm:"size:20;not null" json:"weekday"`
	Slot    string `gorm:"size:40;not null" json:"slot"`

	Dish *Dish `json:"dish,omitempty"`
}

// Class identity is (series, period, name-or-null); a null name is its own
// match case, not a wildcard. The unique index lives in db.Open because it
// needs COALESCE.
type Class struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Series string  `gorm:"size:40;not null;check:series <> ''" json:"series"`
	Period string  `gorm:"size:40;not null;check:period <> ''" json:"period"`
	Name   *string `gorm:"size:80" json:"name,omitempty"`

	Students []Student `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

// Student stores name and RA as ciphertext; RAHash is the deterministic
// fingerprint of the plaintext RA and is the real identity key (the
// ciphertext changes on every write, so it cannot back a unique index).
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name   string  `gorm:"size:512;not null" json:"name"`
	RA     string  `gorm:"column:ra;size:512;not null" json:"ra"`
	RAHash string  `gorm:"column:ra_hash;type:char(64);uniqueIndex;not null;check:length(ra_hash) = 64" json:"-"`
	Series string  `gorm:"size:40;not null;check:series <> ''" json:"series"`
	Period string  `gorm:"size:40;not null;check:period <> ''" json:"period"`
	Notes  *string `gorm:"size:255" json:"notes,omitempty"`

	ClassID *uint  `gorm:"index" json:"-"`
	Class   *Class `json:"class,omitempty"`

	Allergies    []Allergy    `gorm:"constraint:OnDelete:CASCADE" json:"allergies"`
	Hobbies      []Hobby      `gorm:"constraint:OnDelete:CASCADE" json:"hobbies"`
	Difficulties []Difficulty `gorm:"constraint:OnDelete:CASCADE" json:"difficulties"`
}

type Allergy struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	StudentID   uint   `gorm:"not null;index" json:"-"`
	Description string `gorm:"size:255;not null" json:"description"`
}

type Hobby struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	StudentID   uint   `gorm:"not null;index" json:"-"`
	Description string `gorm:"size:255;not null" json:"description"`
}

type Difficulty struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	StudentID   uint   `gorm:"not null;index" json:"-"`
	Description string `gorm:"size:255;not null" json:"description"`
	ItemOrder   int    `gorm:"not null;check:item_order >= 1" json:"order"`
}
