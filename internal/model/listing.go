package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is the coarse price tier of a listing.
type Budget string

// Budget tiers.
const (
	BudgetLow    Budget = "Low"
	BudgetMedium Budget = "Medium"
	BudgetHigh   Budget = "High"
)

// Valid reports whether b is one of the three known tiers.
func (b Budget) Valid() bool {
	return b == BudgetLow || b == BudgetMedium || b == BudgetHigh
}

// Verification levels. The level is raised only through the administrative
// path, never by the listing owner.
const (
	VerificationBasic   = 1
	VerificationVouched = 2
	VerificationMax     = 3
)

// SeedOwnerUID marks catalog listings that have no real owner.
const SeedOwnerUID = "seed"

// Listing represents a service provider record in the directory.
type Listing struct {
	ID                uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name              string    `json:"name" gorm:"size:255;not null;index"`
	Category          string    `json:"category" gorm:"size:100;index"`
	MicroNiche        string    `json:"microNiche" gorm:"size:150"`
	Description       string    `json:"description" gorm:"type:text"`
	BudgetRange       Budget    `json:"budgetRange" gorm:"size:10;index"`
	Rating            float64   `json:"rating"`
	Contact           string    `json:"contact" gorm:"size:255"`
	Location          string    `json:"location" gorm:"size:150;index"`
	Website           string    `json:"website,omitempty" gorm:"size:255"`
	Lat               *float64  `json:"lat,omitempty"`
	Lng               *float64  `json:"lng,omitempty"`
	VouchCount        uint      `json:"vouchCount" gorm:"default:0"`
	VerificationLevel int       `json:"verificationLevel" gorm:"default:1;index"`
	HasMemberDiscount bool      `json:"hasMemberDiscount" gorm:"default:false"`
	Analysis          string    `json:"analysis,omitempty" gorm:"type:text"`
	TrustScore        *int      `json:"trustScore,omitempty"`
	OwnerUID          string    `json:"ownerUid,omitempty" gorm:"size:64;index"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
