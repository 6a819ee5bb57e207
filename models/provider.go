package models

// Provider is a person or resource that customers book time with.
// AppointmentTypes lists the IDs of the types this provider offers.
type Provider struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Email            string   `bson:"email" json:"email"`
	Phone            string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialization   string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	AppointmentTypes []string `bson:"appointment_types" json:"appointment_types"`
	Active           bool     `bson:"active" json:"active"`
}

// OffersType reports whether the provider offers the given appointment type.
func (p Provider) OffersType(typeID string) bool {
	for _, id := range p.AppointmentTypes {
		if id == typeID {
			return true
		}
	}
	return false
}

// ProviderRef is the minimal provider view carried through slot search.
type ProviderRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
