package models

import (
	"time"

	"github.com/mado-app/mado/internal/shared/constants"
)

// UserModel is the gorm mapping for accounts. Email is unique and required.
// Username is unique but nullable; the unique index still applies to
// non-null values, which is what makes the insert/update race on duplicate
// usernames safe to resolve at the database.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"uniqueIndex:uix_users_email;size:255;not null"`
	Username     *string   `gorm:"uniqueIndex:uix_users_username;size:20"`
	Name         string    `gorm:"size:50;not null"`
	PasswordHash *string   `gorm:"size:255"`
	AvatarURL    *string   `gorm:"size:500"`
	Bio          *string   `gorm:"size:200"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
