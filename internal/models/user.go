package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"` // "user" or "admin", fixed at registration

	// Relationships
	Projects         []Project `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	SentMessages     []Message `gorm:"foreignKey:SenderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ReceivedMessages []Message `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
