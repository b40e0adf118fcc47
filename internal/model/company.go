package model

import (
	"github.com/google/uuid"
)

// Company is a client business that shifts are worked for.
type Company struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"not null"`
	Phone string    `gorm:"uniqueIndex;not null"`
	Notes *string
}
