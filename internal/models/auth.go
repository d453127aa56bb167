package models

const (
	FirestoreUserProfilesCollection = "user_profiles"
)

// Profile is a collection of standard profile information for a user.
// This struct separates client-safe profile information from internal user metadata.
type Profile struct {
	FirstName   string `json:"firstName" mapstructure:"firstName"`
	LastName    string `json:"lastName" mapstructure:"lastName"`
	Email       string `json:"email" mapstructure:"email"`
	Age         int    `json:"age,omitempty" mapstructure:"age"`
	Profession  string `json:"profession,omitempty" mapstructure:"profession"`
	Address     string `json:"address,omitempty" mapstructure:"address"`
	PhoneNumber string `json:"phoneNumber,omitempty" mapstructure:"phoneNumber"`
	Institute   string `json:"institute,omitempty" mapstructure:"institute"`
	Company     string `json:"company,omitempty" mapstructure:"company"`
	Position    string `json:"position,omitempty" mapstructure:"position"`
	IsAdmin     bool   `json:"isAdmin,omitempty" mapstructure:"isAdmin"`
}

// User represents a registered user.
type User struct {
	*Profile
	ID                 string `json:"id" mapstructure:"id"`
	Disabled           bool
	CreationTimestamp  int64
	LastLogInTimestamp int64
}

// DisplayName returns the user's full name for certificates and emails.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// CreateUserRequest is the parameter struct for the CreateUser function.
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Age         int    `json:"age" validate:"omitempty,gte=1"`
	Profession  string `json:"profession"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Institute   string `json:"institute"`
	Company     string `json:"company"`
	Position    string `json:"position"`
}
