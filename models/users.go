package models

import "time"

const CodePrefixUser = "USR"

type User struct {
	Code      string    `gorm:"primaryKey;type:char(10)" json:"UsuarioCodigo"`
	Name      string    `gorm:"type:varchar(255);not null" json:"UsuarioNombre"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"UsuarioCorreo"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(50);not null" json:"UsuarioRol"` // admin, mesero, cocinero
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}
