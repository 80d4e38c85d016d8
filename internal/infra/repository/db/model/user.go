package model

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleAdmin    UserRole = "ADMIN"
)

type Address struct {
	AddressID uint   `gorm:"primaryKey" json:"id"`
	Street    string `gorm:"type:varchar(100)" json:"street"`
	City      string `gorm:"type:varchar(50)" json:"city"`
	State     string `gorm:"type:varchar(50)" json:"state"`
	Country   string `gorm:"type:varchar(50)" json:"country"`
	Zipcode   string `gorm:"type:varchar(20)" json:"zipcode"`
	BaseModel `json:"-"`
}

type User struct {
	UserID    uint     `gorm:"primaryKey" json:"id"`
	FirstName string   `gorm:"not null;type:varchar(50)" json:"firstName"`
	LastName  string   `gorm:"not null;type:varchar(50)" json:"lastName"`
	Email     string   `gorm:"unique;not null;type:varchar(100)" json:"email"`
	Phone     string   `gorm:"not null;type:varchar(50)" json:"phone"`
	Role      UserRole `gorm:"not null;type:varchar(20);default:CUSTOMER" json:"role"`
	AddressID *uint    `json:"-"`
	Address   *Address `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE" json:"address,omitempty"`
	BaseModel `json:"-"`
}
