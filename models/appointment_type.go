package models

// AppointmentType describes a bookable service and how long it takes.
type AppointmentType struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description" json:"description"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64 `bson:"price" json:"price"`
	Color           string  `bson:"color,omitempty" json:"color,omitempty"`
}
