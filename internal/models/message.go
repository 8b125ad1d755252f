package models

import "gorm.io/gorm"

type Message struct {
	gorm.Model

	ProjectID  uint   `gorm:"not null;index"`
	SenderID   uint   `gorm:"not null;index"`
	ReceiverID uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	ParentID   *uint  `gorm:"index"` // reply thread, nil for a top-level message

	// Relationships
	Project  Project  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Sender   User     `gorm:"foreignKey:SenderID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Receiver User     `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Parent   *Message `gorm:"foreignKey:ParentID" json:"-"`
}
