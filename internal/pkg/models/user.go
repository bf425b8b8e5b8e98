package models

// Groomer is the service provider profile returned by the backend
type Groomer struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	Address              string   `json:"address,omitempty"`
	City                 string   `json:"city,omitempty"`
	State                string   `json:"state,omitempty"`
	Bio                  string   `json:"bio,omitempty"`
	WorkingHours         string   `json:"workingHours,omitempty"`
	AvailableServices    string   `json:"availableServices,omitempty"`
	Rating               float64  `json:"rating,omitempty"`
	TotalOrders          int      `json:"totalOrders,omitempty"`
	TotalEarnings        float64  `json:"totalEarnings,omitempty"`
	IsActive             bool     `json:"isActive"`
	IsVerified           bool     `json:"isVerified,omitempty"`
	IsAvailableForOrders bool     `json:"isAvailableForOrders,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	ServiceRadius        float64  `json:"serviceRadius,omitempty"` // kilometers
	IsOnline             bool     `json:"isOnline,omitempty"`
	CreatedAt            string   `json:"createdAt,omitempty"`
	UpdatedAt            string   `json:"updatedAt,omitempty"`
}

// RegisterData is the payload for creating a groomer account. The phone
// must already be verified through the registration OTP exchange.
type RegisterData struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,startswith=+,min=11"`
	Password        string   `json:"password" validate:"required,min=8"`
	Address         string   `json:"address" validate:"required"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	ExperienceYears *int     `json:"experienceYears,omitempty" validate:"omitempty,min=0,max=20"`
	Languages       []string `json:"languages,omitempty"`
	ResumeURL       string   `json:"resumeUrl,omitempty" validate:"omitempty,url"`
}

// ProfileUpdate carries the editable subset of a groomer profile
type ProfileUpdate struct {
	ID            int64    `json:"id"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	Address       *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	Bio           *string  `json:"bio,omitempty"`
	WorkingHours  *string  `json:"workingHours,omitempty"`
	ServiceRadius *float64 `json:"serviceRadius,omitempty" validate:"omitempty,gt=0,lte=100"` // kilometers
	IsOnline      *bool    `json:"isOnline,omitempty"`
}
