package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:customer;index"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

type ProfileModel struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"uniqueIndex;not null"`
	AccountNumber string `gorm:"uniqueIndex;size:30;not null"`
	Address       string `gorm:"size:500"`
	Phone         string `gorm:"size:50"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProfileModel) TableName() string {
	return "user_profiles"
}

type SessionModel struct {
	ID        string `gorm:"primaryKey;size:24"`
	UserID    uint   `gorm:"not null;index"`
	IPAddress string `gorm:"size:45"`
	UserAgent string `gorm:"size:500"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	RevokedAt *int64
}

func (SessionModel) TableName() string {
	return "sessions"
}
