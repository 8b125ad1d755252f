package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name    string `gorm:"not null"`
	OwnerID uint   `gorm:"not null;index"`

	// Relationships
	Owner        User          `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Requirements []Requirement `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Messages     []Message     `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
