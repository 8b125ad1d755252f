package models

import "gorm.io/gorm"

type Requirement struct {
	gorm.Model

	ProjectID uint   `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	Category  string `gorm:"not null"` // "Functional", "Non-Functional" or "Uncertain"

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
