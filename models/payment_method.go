package models

import "time"

const CodePrefixPaymentMethod = "MPA"

type PaymentMethod struct {
	Code      string    `gorm:"primaryKey;type:char(10)" json:"MetodoPagoCodigo"`
	Name      string    `gorm:"type:varchar(100);unique;not null" json:"MetodoPagoNombre"`
	Active    bool      `gorm:"not null;default:true" json:"MetodoPagoEstado"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (PaymentMethod) TableName() string {
	return "metodos_pago"
}
