package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteRequest is a request-for-quote submitted against a set of listings.
// Delivery to the providers is out of band; the record is the confirmation.
type QuoteRequest struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RequesterUID string    `json:"requesterUid" gorm:"size:64;index"`
	Details      string    `json:"details" gorm:"type:text;not null"`
	Budget       string    `json:"budget" gorm:"size:50;not null"`
	Deadline     string    `json:"deadline" gorm:"size:50;not null"`
	TargetIDs    string    `json:"targetIds" gorm:"type:json"` // JSON array of listing ids
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (q *QuoteRequest) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
