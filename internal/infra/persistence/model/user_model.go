package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The OTP is stored inline as two nullable
// columns; both are NULL when no code is outstanding. MobilePhone is NULL when
// the user gave none.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username       string     `gorm:"type:varchar(15);not null;uniqueIndex:uk_users_username"`
	Password       string     `gorm:"type:varchar(255);not null"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex:uk_users_email"`
	MobilePhone    *string    `gorm:"type:varchar(11)"`
	IsEnabled      bool       `gorm:"not null;default:false"`
	Role           string     `gorm:"type:varchar(16);not null"`
	OTP            *string    `gorm:"column:otp;type:varchar(6)"`
	OTPGeneratedAt *time.Time `gorm:"column:otp_generation_time"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
