package models

// Customer represents a registered customer of the pizzeria
type Customer struct {
	ID          string `gorm:"primaryKey;size:15" json:"id"`
	Name        string `gorm:"not null;size:60" json:"name"`
	Address     string `gorm:"size:100" json:"address"`
	Email       string `gorm:"not null;size:50" json:"email"`
	PhoneNumber string `gorm:"uniqueIndex;size:20" json:"phone_number"`
}

func (Customer) TableName() string {
	return "customers"
}
