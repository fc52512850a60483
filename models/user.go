package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User is a registered citizen. Reports reference users by ID; identity
// fields only ever leave the system through the administrator listing.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DNI             string             `bson:"dni" json:"dni"`
	FirstNames      string             `bson:"firstNames" json:"firstNames"`
	PaternalSurname string             `bson:"paternalSurname" json:"paternalSurname"`
	MaternalSurname string             `bson:"maternalSurname" json:"maternalSurname"`
	BirthDate       string             `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password,omitempty" json:"-"`
	Address         string             `bson:"address,omitempty" json:"address,omitempty"`
	District        string             `bson:"district,omitempty" json:"district,omitempty"`
	EmailVerified   bool               `bson:"emailVerified" json:"emailVerified"`
	IsAdmin         bool               `bson:"isAdmin" json:"isAdmin"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// Caller builds the explicit caller identity handed to policy checks.
func (u *User) Caller() Caller {
	return Caller{
		UserID:        u.ID,
		EmailVerified: u.EmailVerified,
		Admin:         u.IsAdmin,
	}
}

// ReporterIdentity is the minimal identity slice joined onto reports in the
// administrator listing.
type ReporterIdentity struct {
	FirstNames      string `json:"firstNames"`
	PaternalSurname string `json:"paternalSurname"`
	MaternalSurname string `json:"maternalSurname"`
	DNI             string `json:"dni"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}
