package model

import "time"

const (
	DefaultTitle       = "Title not available"
	DefaultDescription = "Description not available"
	DefaultState       = "State not available"
	DefaultPhone       = "Phone not available"
	DefaultEmail       = "E-mail not available"
	NotInformed        = "Not informed"
)

type ListingView struct {
	Id          string   `json:"id"`
	OwnerId     string   `json:"owner_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Photos      []string `json:"photos"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	State       string   `json:"state"`
	CreatedAt   string   `json:"created_at,omitempty"`
	Own         bool     `json:"own"`
}
type CarouselView struct {
	Index    int    `json:"index"`
	Count    int    `json:"count"`
	Position string `json:"position"`
	Photo    string `json:"photo,omitempty"`
}
type ProfileView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	State string `json:"state"`
}

// NewListingView fills every gap of a loaded listing with its display default.
func NewListingView(l *Listing, userid string) *ListingView {
	view := &ListingView{
		Id:          l.Id.String(),
		OwnerId:     l.OwnerId.String(),
		Title:       orDefault(l.Title, DefaultTitle),
		Description: orDefault(l.Description, DefaultDescription),
		Price:       l.Price,
		Photos:      []string{},
		Email:       orDefault(l.Owner.Email, DefaultEmail),
		Phone:       orDefault(l.Owner.Phone, DefaultPhone),
		State:       DefaultState,
		Own:         userid != "" && l.OwnerId.String() == userid,
	}
	if l.Price < 0 {
		view.Price = 0
	}
	if l.Photos != nil {
		view.Photos = append(view.Photos, l.Photos...)
	}
	if l.Owner.State != "" {
		view.State = StateName(l.Owner.State)
	}
	if !l.CreatedAt.IsZero() {
		view.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	return view
}
func NewProfileView(u *User) *ProfileView {
	view := &ProfileView{
		Email: orDefault(u.Email, NotInformed),
		Name:  orDefault(u.Name, NotInformed),
		Phone: orDefault(u.Phone, NotInformed),
		State: NotInformed,
	}
	if u.State != "" {
		view.State = StateName(u.State)
	}
	return view
}
func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
