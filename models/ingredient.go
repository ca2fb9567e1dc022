package models

import "time"

// CodePrefixIngredient prefixes every insumo code (e.g. INS0000001).
const CodePrefixIngredient = "INS"

// Ingredient (insumo) is a raw stock unit. Stock is mutated exclusively through
// the conditional updates in services.StockService, so a committed row can
// never hold a negative stock.
type Ingredient struct {
	Code      string    `gorm:"primaryKey;type:char(10)" json:"InsumoCodigo"`
	Name      string    `gorm:"type:varchar(200);not null" json:"InsumoNombre"`
	Unit      string    `gorm:"type:varchar(50);not null" json:"InsumoUnidadMedida"`
	Stock     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"InsumoStockActual"`
	UnitCost  float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"InsumoCompraUnidad"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (Ingredient) TableName() string {
	return "insumos"
}
