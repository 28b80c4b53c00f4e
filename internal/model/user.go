package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the authoritative account record. Email is unique across the store.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
}

type Article struct {
	ID      uuid.UUID
	Title   string
	Content string
}
