package model

const (
	RoleAdmin   = "admin"
	RoleParent  = "parent"
	RoleStudent = "student"
)

type User struct {
	ID              int
	Email           string
	FullName        string
	Role            string
	CurrencyBalance int64
}

// Principal is the caller identity taken from the access token.
type Principal struct {
	UserID int
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
