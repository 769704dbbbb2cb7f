package models

// User represents an account in the tracker. Rows are provisioned at
// registration; profile fields mirror what comment reads embed.
type User struct {
	BaseModel
	DisplayName  *string `json:"display_name,omitempty" gorm:"size:100"`
	Email        *string `json:"email,omitempty" gorm:"uniqueIndex:idx_users_email;size:255" validate:"omitempty,email,max=255"`
	PasswordHash string  `json:"-" gorm:"size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// PublicProfile is the subset of user fields embedded in comment reads
type PublicProfile struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
}

// Public returns the embeddable profile fields of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:          u.ID.String(),
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}
