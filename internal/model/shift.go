package model

import (
	"time"

	"github.com/google/uuid"
)

// Shift is one worker's scheduled/worked period at one company on one date.
// The company reference is required; deleting a company removes its shifts.
// The worker reference is optional (unassigned shifts are allowed); deleting
// a worker keeps the shifts and nulls the reference.
type Shift struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date time.Time `gorm:"type:date;not null;index"`
	// StartHour / EndHour are time-of-day strings in HH:MM[:SS] form.
	StartHour *string `gorm:"type:varchar(8)"`
	EndHour   *string `gorm:"type:varchar(8)"`
	WorkType  *string
	Location  *string
	Notes     *string

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Company   *Company  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	WorkerID *uuid.UUID `gorm:"type:uuid;index"`
	Worker   *User      `gorm:"foreignKey:WorkerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
