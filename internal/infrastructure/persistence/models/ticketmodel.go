package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID         uint    `gorm:"primaryKey"`
	OrderID    uint    `gorm:"not null;index:idx_tickets_scope"`
	PositionID *uint   `gorm:"index:idx_tickets_scope"`
	ViewKey    *string `gorm:"size:20;index:idx_tickets_scope"`
	Title      string  `gorm:"size:200;not null"`
	Status     string  `gorm:"size:20;not null;index"`
	Priority   string  `gorm:"size:20;not null;index"`
	CreatorID  uint    `gorm:"not null;index"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt   *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"not null;index"`
	AuthorID    uint           `gorm:"not null;index"`
	AuthorName  string         `gorm:"size:100;not null"`
	TextDE      string         `gorm:"type:text"`
	TextEN      string         `gorm:"type:text"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
