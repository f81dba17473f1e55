package models

import (
	"time"

	"github.com/mado-app/mado/internal/shared/constants"
)

// OAuthAccountModel is the gorm mapping for provider identity links. The
// (provider, provider_user_id) pair is unique.
type OAuthAccountModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	UserID         uint      `gorm:"index;not null"`
	Provider       string    `gorm:"uniqueIndex:uix_oauth_provider_user;size:20;not null"`
	ProviderUserID string    `gorm:"uniqueIndex:uix_oauth_provider_user;size:255;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (OAuthAccountModel) TableName() string {
	return constants.TableOAuthAccounts
}
