package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentOption is a catalog template for one treatment: the slots it
// offers on any day, before bookings for a date are subtracted.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

// Booking is one reserved slot for a treatment on a date.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Patient         string             `bson:"patient" json:"patient"`
	Slot            string             `bson:"slot" json:"slot"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// Role is empty for ordinary users; only "admin" is meaningful.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

const RoleAdmin = "admin"

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
