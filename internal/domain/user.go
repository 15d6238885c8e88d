package domain

type Role string

const (
	RoleProvider Role = "provider"
	RoleCustomer Role = "customer"
)

// User is an authenticated principal. Email is unique within the identity
// directory and Role is immutable after creation. Users live only in session
// state; they are never written to the durable slot.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}
