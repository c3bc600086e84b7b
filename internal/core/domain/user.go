package domain

// Role names as issued by the storefront API.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Gender is the declared gender of a user account.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// User models an account as returned by the storefront API. It doubles as
// the authenticated identity held by the session store.
type User struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Gender    Gender   `json:"gender"`
	BirthDate Date     `json:"birthDate"`
	Enabled   bool     `json:"isEnabled"`
	Roles     []string `json:"roles"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FullName is the display name used in notifications and the console prompt.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
