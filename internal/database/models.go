package database

import (
	"time"
)

// Trainer is a row of the trainers table
type Trainer struct {
	ID        string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"size:100"`
	Enabled   bool   `gorm:"default:true"`
	CreatedAt time.Time
}

// Pokemon is a row of the pokemons table
type Pokemon struct {
	ID             string   `gorm:"primaryKey;size:36"`
	OwnerID        string   `gorm:"index;size:32;not null"`
	Owner          *Trainer `gorm:"foreignKey:OwnerID"`
	Name           string   `gorm:"size:100;not null"`
	SpeciesIndex   int
	Type1          string `gorm:"size:20"`
	Type2          string `gorm:"size:20"`
	Ability        string `gorm:"size:50"`
	Move1          string `gorm:"size:50"`
	Move2          string `gorm:"size:50"`
	Move3          string `gorm:"size:50"`
	Move4          string `gorm:"size:50"`
	Nature         string `gorm:"size:20"`
	Decreased      string `gorm:"size:20"`
	Increased      string `gorm:"size:20"`
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Sprite         string
	Color          string    `gorm:"size:10"`
	CreatedAt      time.Time `gorm:"index"`
}
