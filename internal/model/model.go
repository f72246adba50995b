package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Phone    string    `json:"phone"`
	State    string    `json:"state"`
}
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	State string `json:"state"`
}
type Listing struct {
	Id          uuid.UUID `json:"id"`
	OwnerId     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Photos      []string  `json:"photos"`
	Uploaded    []string  `json:"uploaded"`
	CreatedAt   time.Time `json:"created_at"`
	Owner       Contact   `json:"owner"`
}
type Session struct {
	SessionID      string
	UserID         string
	ExpirationTime time.Time
}
type Draft struct {
	Id          string   `json:"id"`
	OwnerId     string   `json:"owner_id"`
	ListingId   string   `json:"listing_id,omitempty"`
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=4000"`
	Price       float64  `json:"price" validate:"gte=0"`
	Photos      []string `json:"photos" validate:"max=5"`
	Uploaded    []string `json:"uploaded,omitempty"`
}
type RegistrationRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
	State    string `json:"state" validate:"omitempty,state"`
}
type AuthenticationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}
type DeletionRequest struct {
	Password string `json:"password" validate:"required"`
}
type DraftUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}
type ListingUpdateRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string   `json:"description" validate:"omitempty,max=4000"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Photos      *[]string `json:"photos" validate:"omitempty,dive,required,max=2048"`
}
type PhotoBatchRequest struct {
	Photos []string `json:"photos" validate:"dive,required,max=2048"`
}
type CarouselRequest struct {
	Index   int      `json:"index"`
	Command string   `json:"command" validate:"omitempty,oneof=next previous"`
	Gesture *Gesture `json:"gesture"`
}
type Gesture struct {
	Displacement float64 `json:"displacement"`
	Phase        string  `json:"phase" validate:"required,oneof=active ended cancelled"`
}
