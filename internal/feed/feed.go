// Package feed orders the listings shown on the home screen.
package feed

import "github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"

// Partition splits listings into those owned by userid and the rest, keeping fetch order in both.
func Partition(listings []*model.Listing, userid string) (own []*model.Listing, other []*model.Listing) {
	own = make([]*model.Listing, 0, len(listings))
	other = make([]*model.Listing, 0, len(listings))
	for _, l := range listings {
		if userid != "" && l.OwnerId.String() == userid {
			own = append(own, l)
			continue
		}
		other = append(other, l)
	}
	return own, other
}

// Compose returns own followed by other when showOwn is set, otherwise other alone.
func Compose(listings []*model.Listing, userid string, showOwn bool) []*model.Listing {
	own, other := Partition(listings, userid)
	if !showOwn {
		return other
	}
	return append(own, other...)
}
