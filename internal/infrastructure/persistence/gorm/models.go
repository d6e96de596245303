// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"time"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	ImageURL     string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Recipes []RecipeModel `gorm:"foreignKey:UserID"`
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Title        string `gorm:"type:varchar(100);not null"`
	SourceURL    string `gorm:"type:text"`
	Ingredients  string `gorm:"type:text"`
	Instructions string `gorm:"type:text"`
	ImageURL     string `gorm:"type:text"`
	CreatedOn    time.Time
	Done         bool `gorm:"default:false"`
	DoneOn       *time.Time
	Leftovers    bool `gorm:"default:false"`
	UserID       uint `gorm:"not null;index"`

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (RecipeModel) TableName() string {
	return "recipes"
}
