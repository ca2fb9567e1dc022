package models

import "time"

const CodePrefixTable = "MES"

// Table (mesa) states.
const (
	TableAvailable = "disponible"
	TableOccupied  = "ocupada"
	TableDirty     = "sucia"
	TableReserved  = "reservada"
)

// IsValidTableStatus reports whether s names a known mesa state.
func IsValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableDirty, TableReserved:
		return true
	}
	return false
}

type Table struct {
	Code      string    `gorm:"primaryKey;type:char(10)" json:"MesaCodigo"`
	Number    int       `gorm:"not null" json:"MesaNumero"`
	Capacity  int       `gorm:"not null;default:4" json:"MesaCapacidad"`
	Status    string    `gorm:"type:varchar(20);not null;default:'disponible'" json:"MesaEstado"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (Table) TableName() string {
	return "mesas"
}
