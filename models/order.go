package models

import "time"

const CodePrefixOrder = "PED"

// Order states. Forward-only: pendiente -> en_cocina -> listo -> servido,
// with cancelado reachable from any non-terminal state. servido and cancelado
// are terminal.
const (
	OrderPending   = "pendiente"
	OrderInKitchen = "en_cocina"
	OrderReady     = "listo"
	OrderServed    = "servido"
	OrderCancelled = "cancelado"
)

var orderTransitions = map[string][]string{
	OrderPending:   {OrderInKitchen, OrderCancelled},
	OrderInKitchen: {OrderReady, OrderCancelled},
	OrderReady:     {OrderServed, OrderCancelled},
	OrderServed:    {},
	OrderCancelled: {},
}

// IsValidOrderStatus reports whether s names a known order state.
func IsValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition validates a status change against the order state machine.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	Code              string      `gorm:"primaryKey;type:char(10)" json:"PedidoCodigo"`
	TableCode         string      `gorm:"type:char(10);not null;index" json:"MesaCodigo"`
	Table             Table       `gorm:"foreignKey:TableCode;references:Code" json:"Mesa,omitempty"`
	Status            string      `gorm:"type:varchar(20);not null;default:'pendiente'" json:"PedidoEstado"`
	Total             float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"PedidoTotal"`
	CreatedBy         *string     `gorm:"type:char(10)" json:"PedidoUsuarioCreador,omitempty"`
	CookCode          *string     `gorm:"type:char(10)" json:"PedidoUsuarioCocinero,omitempty"`
	CashierCode       *string     `gorm:"type:char(10)" json:"PedidoUsuarioCobro,omitempty"`
	PaymentMethodCode *string     `gorm:"type:char(10)" json:"PedidoMetodoPagoCodigo,omitempty"`
	Lines             []OrderLine `gorm:"foreignKey:OrderCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"Detalles"`
	CreatedAt         time.Time   `gorm:"not null" json:"PedidoFechaHora"`
	UpdatedAt         time.Time   `gorm:"not null" json:"-"`
}

func (Order) TableName() string {
	return "pedidos"
}
