package models

// AdminRole is the role entry that grants back-office access.
const AdminRole = "Administradores"

// CurrentUser is the decoded session claim set: the raw user body from
// the backend plus the resolved roles list.
type CurrentUser struct {
	ID          int64    `json:"id"`
	Login       string   `json:"login"`
	DisplayName string   `json:"displayName"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Admin       bool     `json:"admin"`
	Employee    bool     `json:"employee"`
	Status      string   `json:"status"`
	Roles       []string `json:"roles"`
}

// IsAdmin reports whether this user is entitled to the admin back office,
// either through the admin flag or through the administrators role.
func (u *CurrentUser) IsAdmin() bool {
	if u == nil {
		return false
	}
	if u.Admin {
		return true
	}
	for _, r := range u.Roles {
		if r == AdminRole {
			return true
		}
	}
	return false
}

// User is the full user record from the backend user listing.
type User struct {
	ID               int64  `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	IDDocumentType   string `json:"id_document_type"`
	IDDocumentNumber string `json:"id_document_number"`
	Telephone        string `json:"telephone"`
	Position         string `json:"position,omitempty"`
	Username         string `json:"username"`
	Login            string `json:"login"`
	DisplayName      string `json:"displayName"`
	Status           string `json:"status"`
	Admin            bool   `json:"admin"`
	Employee         bool   `json:"employee"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

// UserOption is the reduced shape used to populate customer selectors in
// the admin reservation form.
type UserOption struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Login     string `json:"login"`
	Telephone string `json:"telephone,omitempty"`
}

// UserRegistrationData is the register body proxied to the backend.
type UserRegistrationData struct {
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	IDDocumentType   string `json:"id_document_type" binding:"required"`
	IDDocumentNumber string `json:"id_document_number" binding:"required"`
	Login            string `json:"login" binding:"required"`
	Password         string `json:"password" binding:"required"`
	Telephone        string `json:"telephone" binding:"required"`
	Position         string `json:"position,omitempty"`
	Username         string `json:"username" binding:"required"`
	DisplayName      string `json:"displayName" binding:"required"`
}

// LoginCredentials is the login body.
type LoginCredentials struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is the successful login response: the bearer token plus
// the resolved user.
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        CurrentUser `json:"user"`
}
