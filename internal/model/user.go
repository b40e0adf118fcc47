package model

import (
	"github.com/google/uuid"
)

// Roles for User. Exactly one admin row is expected to exist; it is seeded
// with cmd/seedadmin and protected from the worker-management endpoints.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// User stores both the single admin account and all workers.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"index;not null"`
	Phone        string    `gorm:"uniqueIndex;not null"`
	PersonalID   *string   `gorm:"uniqueIndex"`
	WorkType     *string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(10);not null;default:'worker'"`
	Notes        *string
}
