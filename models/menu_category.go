package models

import "time"

const CodePrefixCategory = "CAT"

type MenuCategory struct {
	Code        string    `gorm:"primaryKey;type:char(10)" json:"CategoriaCodigo"`
	Name        string    `gorm:"type:varchar(100);unique;not null" json:"CategoriaNombre"`
	Description string    `gorm:"type:text" json:"CategoriaDescripcion"`
	Active      bool      `gorm:"not null;default:true" json:"CategoriaEstado"`
	CreatedAt   time.Time `gorm:"not null" json:"-"`
	UpdatedAt   time.Time `gorm:"not null" json:"-"`
}

func (MenuCategory) TableName() string {
	return "categorias"
}
