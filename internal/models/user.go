package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is an account identity. Passwords are stored only as bcrypt hashes
// and never serialized. IsAdmin is persisted but gates no operation yet.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150"`
	Fullname  string    `json:"fullname" gorm:"size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	DOB       time.Time `json:"dob"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignupRequest defines the request body for user registration
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=150"`
	Fullname string `json:"fullname" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	DOB      string `json:"dob" validate:"required,datetime=2006-01-02"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for authentication. Identifier is a
// username or an email; the username lookup is tried first.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
