package groomer

import (
	"context"

	"github.com/piresc/groomer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/groomer/services/groomer GroomerGW

// GroomerGW is the backend contract for the signed-in groomer's account
type GroomerGW interface {
	GetProfile(ctx context.Context, groomerID int64) (*models.Groomer, error)
	UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Groomer, error)
	UpdateAvailability(ctx context.Context, groomerID int64, available bool) error

	AvailableOrders(ctx context.Context, groomerID int64, query models.OrderQuery) ([]models.Order, error)
	AssignedOrders(ctx context.Context, groomerID int64) ([]models.Order, error)
	AcceptOrder(ctx context.Context, req *models.AcceptOrderRequest) error
	UpdateOrderStatus(ctx context.Context, orderID int64, req *models.OrderStatusRequest) error

	// Order start/completion codes held by the customer
	RequestCompletionOTP(ctx context.Context, orderID, groomerID int64) (string, error)
	StartService(ctx context.Context, orderID int64, req *models.StartServiceRequest) error
	CompleteService(ctx context.Context, orderID int64, req *models.CompleteServiceRequest) error

	UpdateCurrentLocation(ctx context.Context, update *models.CurrentLocationUpdate) error
	UpdateLocation(ctx context.Context, groomerID int64, update *models.LocationUpdate) error

	Earnings(ctx context.Context, groomerID int64, days int) (*models.Earnings, error)
	EarningsHistory(ctx context.Context, groomerID int64) ([]models.EarningsHistory, error)
	Statistics(ctx context.Context, groomerID int64) (models.Statistics, error)

	Health(ctx context.Context) bool
}
