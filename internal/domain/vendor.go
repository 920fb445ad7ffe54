package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

type Vendor struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Description          *string   `json:"description,omitempty"`
	Address              string    `json:"address"`
	PhoneNumber          string    `json:"phone_number"`
	ZipCode              string    `json:"zip_code"`
	HowDidYouHearAboutUs string    `json:"how_did_you_hear_about_us"`
	Country              string    `json:"country"`
	Role                 string    `json:"role"`
	Verified             bool      `json:"verified"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RegisterVendorRequest representa o cadastro de um novo vendedor
type RegisterVendorRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	Address              string `json:"address" validate:"required"`
	PhoneNumber          string `json:"phone_number" validate:"required"`
	ZipCode              string `json:"zip_code" validate:"required"`
	HowDidYouHearAboutUs string `json:"how_did_you_hear_about_us" validate:"required"`
	Country              string `json:"country" validate:"required"`
}

type Claims struct {
	VendorID    string
	VendorName  string
	VendorEmail string
	Role        string
	jwt.RegisteredClaims
}
