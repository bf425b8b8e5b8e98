package models

// ServiceStage selects which end of an order a customer's code unlocks
type ServiceStage string

const (
	ServiceStart ServiceStage = "start"
	ServiceEnd   ServiceStage = "end"
)

// Valid reports whether s is a known service stage
func (s ServiceStage) Valid() bool {
	return s == ServiceStart || s == ServiceEnd
}

// CompletionOTPRequest asks the backend to text the customer a completion code
type CompletionOTPRequest struct {
	GroomerID int64 `json:"groomerId"`
}

// StartServiceRequest starts an order with the code the customer received
// when the order was assigned
type StartServiceRequest struct {
	StartOTP  string `json:"startOtp"`
	GroomerID int64  `json:"groomerId"`
}

// CompleteServiceRequest finishes an order with the customer's completion code
type CompleteServiceRequest struct {
	CompletionOTP string `json:"completionOtp"`
	GroomerID     int64  `json:"groomerId"`
	GroomerNotes  string `json:"groomerNotes"`
}

// CurrentLocationUpdate reports where the groomer is right now
type CurrentLocationUpdate struct {
	ID               int64   `json:"id"`
	CurrentLatitude  float64 `json:"currentLatitude" validate:"gte=-90,lte=90"`
	CurrentLongitude float64 `json:"currentLongitude" validate:"gte=-180,lte=180"`
}

// LocationUpdate moves the groomer's service area
type LocationUpdate struct {
	Latitude        float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude       float64  `json:"longitude" validate:"gte=-180,lte=180"`
	ServiceRadiusKm *float64 `json:"serviceRadiusKm,omitempty" validate:"omitempty,gt=0,lte=100"`
}

// Statistics is the backend's dashboard summary. Its fields vary between
// backend versions, so it is kept as decoded JSON.
type Statistics map[string]interface{}
