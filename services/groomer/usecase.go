package groomer

import (
	"context"

	"github.com/piresc/groomer/internal/pkg/models"
)

// GroomerUC is the account surface for the signed-in groomer. Every call
// acts on the groomer held by the session store.
type GroomerUC interface {
	Profile(ctx context.Context) (*models.Groomer, error)
	UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Groomer, error)
	SetAvailability(ctx context.Context, available bool) error

	AvailableOrders(ctx context.Context, query models.OrderQuery) ([]models.Order, error)
	AssignedOrders(ctx context.Context) ([]models.Order, error)
	AcceptOrder(ctx context.Context, orderID int64, estimatedArrival string) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus, notes string) error

	RequestServiceOTP(ctx context.Context, orderID int64, stage models.ServiceStage) (string, error)
	VerifyServiceOTP(ctx context.Context, orderID int64, stage models.ServiceStage, code, notes string) error

	UpdateCurrentLocation(ctx context.Context, latitude, longitude float64) error
	UpdateServiceArea(ctx context.Context, update models.LocationUpdate) error

	Earnings(ctx context.Context, period models.EarningsPeriod) (*models.Earnings, error)
	EarningsHistory(ctx context.Context) ([]models.EarningsHistory, error)
	Statistics(ctx context.Context) (models.Statistics, error)

	Health(ctx context.Context) bool
}
