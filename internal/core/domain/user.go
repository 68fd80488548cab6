package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity models an authenticated actor in the system.
//
// PasswordHash, Address, and Phone are private attributes: they never cross
// the trust boundary. They are excluded from JSON serialization outright and
// the projected public view (see the view package) drops them as well.
type Identity struct {
	ID           int64  `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Role         string `json:"role" bson:"role"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Address      string `json:"-" bson:"address"`
	Phone        string `json:"-" bson:"phone"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
