package models

// Practitioner is the roster document for a bookable clinician.
type Practitioner struct {
	ID           string            `bson:"id" json:"id"`
	FirstName    string            `bson:"firstName" json:"firstName"`
	LastName     string            `bson:"lastName" json:"lastName"`
	Vertical     string            `bson:"vertical" json:"vertical"`         // e.g., "therapy", "nutrition", "obgyn"
	CanPrescribe bool              `bson:"canPrescribe" json:"canPrescribe"` // prescribing eligibility flag
	Status       string            `bson:"status" json:"status"`             // "active", "paused", or "offboarded"
	MaxCapacity  int               `bson:"maxCapacity" json:"maxCapacity"`   // concurrent bookings a schedule block supports
	Timezone     string            `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Products     []BookableProduct `bson:"products,omitempty" json:"products,omitempty"`
}

// BookableProduct is an appointment offering a practitioner can be booked for.
type BookableProduct struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
	Active          bool   `bson:"active" json:"active"`
}

// MinimumBookableMinutes returns the shortest active product duration, or 0 when
// the practitioner has no active offering and cannot be booked at all.
func (p Practitioner) MinimumBookableMinutes() int {
	minimum := 0
	for _, product := range p.Products {
		if !product.Active || product.DurationMinutes <= 0 {
			continue
		}
		if minimum == 0 || product.DurationMinutes < minimum {
			minimum = product.DurationMinutes
		}
	}
	return minimum
}

// IsSearchable reports whether the practitioner may appear in availability search.
func (p Practitioner) IsSearchable() bool {
	return p.Status == "active"
}

// PractitionerSummary is the public directory view of a practitioner.
type PractitionerSummary struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Vertical     string `json:"vertical"`
	CanPrescribe bool   `json:"canPrescribe"`
}

// Summary projects the roster document onto its directory view.
func (p Practitioner) Summary() PractitionerSummary {
	return PractitionerSummary{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Vertical:     p.Vertical,
		CanPrescribe: p.CanPrescribe,
	}
}
