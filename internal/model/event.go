package model

const (
	ListingCreatedKey = "listing.created"
	ListingDeletedKey = "listing.deleted"
	UserDeleteKey     = "user.delete"
)

// AdsEvent is the broker message body. Photos carries the references that outlived their rows.
type AdsEvent struct {
	UserID    string   `json:"userid"`
	ListingID string   `json:"listingid,omitempty"`
	Listings  []string `json:"listings,omitempty"`
	Photos    []string `json:"photos,omitempty"`
	Traceid   string   `json:"traceid"`
}
