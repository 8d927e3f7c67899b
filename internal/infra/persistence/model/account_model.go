// Package model contains the GORM persistence models mirroring database tables.
package model

import "time"

// AccountModel mirrors the 'accounts' table. The integer primary key is
// assigned by the database on insert. Username and email carry unique
// constraints; the business layer pre-checks them, the database enforces them.
type AccountModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordDigest string `gorm:"type:varchar(255);not null"`
	Role           string `gorm:"type:varchar(20);not null;default:User"`
	FullName       string `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
