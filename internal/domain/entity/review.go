package entity

import "time"

// Review is a user's rating and comment on a canteen or a dish.
// Rating range and the canteen/dish exclusivity are not enforced.
type Review struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	User      *User     `json:"user"`
	Canteen   *Canteen  `json:"canteen"`
	Dish      *Dish     `json:"dish"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserID returns the id of the referenced user, or "".
func (r *Review) UserID() string {
	if r == nil || r.User == nil {
		return ""
	}

	return r.User.ID
}

// CanteenID returns the id of the referenced canteen, or "".
func (r *Review) CanteenID() string {
	if r == nil || r.Canteen == nil {
		return ""
	}

	return r.Canteen.ID
}

// DishID returns the id of the referenced dish, or "".
func (r *Review) DishID() string {
	if r == nil || r.Dish == nil {
		return ""
	}

	return r.Dish.ID
}
