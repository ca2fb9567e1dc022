package models

import "time"

const CodePrefixRecipe = "REC"

// Recipe is the consumption formula for one recipe-kind menu item.
type Recipe struct {
	Code         string       `gorm:"primaryKey;type:char(10)" json:"RecetaCodigo"`
	MenuItemCode string       `gorm:"type:char(10);not null;uniqueIndex" json:"MenuCodigo"`
	Lines        []RecipeLine `gorm:"foreignKey:RecipeCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"DetallesReceta"`
	CreatedAt    time.Time    `gorm:"not null" json:"-"`
	UpdatedAt    time.Time    `gorm:"not null" json:"-"`
}

func (Recipe) TableName() string {
	return "recetas"
}

// RecipeLine is one (insumo, quantity-per-unit) pair. The same insumo may
// appear on several lines; quantities are cumulative, never deduplicated.
type RecipeLine struct {
	ID             uint       `gorm:"primaryKey" json:"-"`
	RecipeCode     string     `gorm:"type:char(10);not null;index" json:"RecetaCodigo"`
	IngredientCode string     `gorm:"type:char(10);not null" json:"InsumoCodigo"`
	Ingredient     Ingredient `gorm:"foreignKey:IngredientCode;references:Code" json:"Insumo,omitempty"`
	Quantity       float64    `gorm:"type:decimal(10,2);not null" json:"Cantidad"`
}

func (RecipeLine) TableName() string {
	return "receta_detalles"
}
