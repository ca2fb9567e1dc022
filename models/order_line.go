package models

import "time"

const CodePrefixOrderLine = "DET"

// Line states for the kitchen-facing sub-workflow. Lines advance
// independently of their order.
const (
	LinePending   = "pendiente"
	LineCooking   = "preparando"
	LineReady     = "listo"
	LineDelivered = "entregado"
)

// OrderLine snapshots the menu price at creation time; Subtotal is
// Quantity x UnitPrice as of that moment, so historical orders are insulated
// from later catalog price changes.
type OrderLine struct {
	Code         string    `gorm:"primaryKey;type:char(10)" json:"DetallePedidoCodigo"`
	OrderCode    string    `gorm:"type:char(10);not null;index" json:"PedidoCodigo"`
	MenuItemCode string    `gorm:"type:char(10);not null" json:"MenuCodigo"`
	MenuItem     MenuItem  `gorm:"foreignKey:MenuItemCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"Producto,omitempty"`
	Quantity     int       `gorm:"not null" json:"Cantidad"`
	UnitPrice    float64   `gorm:"type:decimal(10,2);not null" json:"PrecioUnitario"`
	Subtotal     float64   `gorm:"type:decimal(10,2);not null" json:"Subtotal"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pendiente'" json:"Estado"`
	Notes        string    `gorm:"type:text" json:"Notas"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

func (OrderLine) TableName() string {
	return "detalle_pedidos"
}
