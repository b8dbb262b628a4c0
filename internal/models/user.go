package models

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer   = "customer"
	RoleSubscriber = "subscriber"

	// RoleAll is accepted by the role filter and means "no specific role".
	RoleAll = "all"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is a row of the users table
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserLogin      string    `gorm:"type:varchar(60);uniqueIndex;not null" json:"user_login"`
	UserNicename   string    `gorm:"type:varchar(50);index;not null" json:"user_nicename"`
	UserEmail      string    `gorm:"type:varchar(100);index;not null" json:"user_email"`
	UserRegistered time.Time `gorm:"not null;index" json:"user_registered"`
	DisplayName    string    `gorm:"type:varchar(250);not null;default:''" json:"display_name"`

	Meta  []UserMeta `gorm:"foreignKey:UserID" json:"-"`
	Roles []UserRole `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserRegistered.IsZero() {
		u.UserRegistered = time.Now().UTC()
	}
	if u.UserNicename == "" {
		u.UserNicename = u.UserLogin
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.UserLogin == "" {
		return errors.New("user login is required")
	}

	if u.UserEmail == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(u.UserEmail) {
		return errors.New("invalid email format")
	}

	return nil
}

func (u *User) TableName() string {
	return "users"
}

// UserMeta is a single key/value attribute attached to a user
type UserMeta struct {
	UmetaID   uint64 `gorm:"column:umeta_id;primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index"`
	MetaKey   string `gorm:"type:varchar(255);index;not null"`
	MetaValue string `gorm:"type:text;not null;default:''"`
}

func (m *UserMeta) TableName() string {
	return "usermeta"
}

// UserRole assigns a role to a user. Position keeps the assignment order,
// the lowest position is the user's primary role.
type UserRole struct {
	UserID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Role     string `gorm:"type:varchar(64);primaryKey"`
	Position int    `gorm:"not null;default:0"`
}

func (r *UserRole) TableName() string {
	return "user_roles"
}
