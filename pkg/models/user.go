// Package models contains domain types for venture-engine.
package models

// User is an account that owns evaluation projects.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
