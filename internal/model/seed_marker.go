package model

import "time"

// SeedMarker guards catalog seeding. The marker row is inserted in the same
// transaction as the seed batch, so two cold starts cannot both seed: the
// second insert fails on the primary key and the batch rolls back.
type SeedMarker struct {
	Key       string    `gorm:"size:64;primaryKey"`
	CreatedAt time.Time
}
