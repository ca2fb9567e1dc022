package models

import "time"

const CodePrefixMenuItem = "MEN"

// Preparation kind of a menu item. A recipe item consumes a weighted set of
// ingredients per unit sold; a direct item maps 1:1 onto a single insumo
// (e.g. a bottled drink).
const (
	PreparedRecipe = "A"
	PreparedDirect = "I"
)

type MenuItem struct {
	Code           string       `gorm:"primaryKey;type:char(10)" json:"MenuCodigo"`
	Name           string       `gorm:"type:varchar(255);not null" json:"MenuPlatos"`
	Description    string       `gorm:"type:text" json:"MenuDescripcion"`
	Price          float64      `gorm:"type:decimal(10,2);not null" json:"MenuPrecio"`
	Prepared       string       `gorm:"type:char(1);not null" json:"MenuEsPreparado"`
	Active         bool         `gorm:"not null;default:true" json:"MenuEstado"`
	ImageURL       *string      `gorm:"type:varchar(255)" json:"MenuImageUrl,omitempty"`
	CategoryCode   string       `gorm:"type:char(10);not null;index" json:"MenuCategoriaCodigo"`
	Category       MenuCategory `gorm:"foreignKey:CategoryCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Categoria"`
	IngredientCode *string      `gorm:"type:char(10)" json:"MenuInsumoCodigo,omitempty"`
	Ingredient     *Ingredient  `gorm:"foreignKey:IngredientCode;references:Code" json:"Insumo,omitempty"`
	CreatedAt      time.Time    `gorm:"not null" json:"-"`
	UpdatedAt      time.Time    `gorm:"not null" json:"-"`
}

func (MenuItem) TableName() string {
	return "menus"
}

// IsDirect reports whether the item is sold straight from a single insumo.
func (m *MenuItem) IsDirect() bool {
	return m.Prepared == PreparedDirect
}
