package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User owns product lists (APPUSER table)
type User struct {
	ID           uint          `gorm:"column:User_id;primaryKey" json:"id"`
	Email        string        `gorm:"column:Email;type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password     string        `gorm:"column:Password;type:varchar(255);not null" json:"-"` // Hidden from JSON
	FirstName    string        `gorm:"column:First_name;type:varchar(255)" json:"first_name"`
	LastName     string        `gorm:"column:Last_name;type:varchar(255)" json:"last_name"`
	MobileNumber string        `gorm:"column:Mobile_number;type:varchar(20)" json:"mobile_number"`
	Lists        []ProductList `gorm:"foreignKey:OwnerID" json:"lists,omitempty"`
}

func (User) TableName() string {
	return "APPUSER"
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// FullName joins first and last name
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
