package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/piresc/groomer/internal/pkg/http"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
)

const healthTimeout = 5 * time.Second

// Messages shown when the backend does not supply one
const (
	MsgFetchProfileFailed       = "Failed to fetch profile"
	MsgUpdateProfileFailed      = "Failed to update profile"
	MsgUpdateAvailabilityFailed = "Failed to update availability"
	MsgAvailableOrdersFailed    = "Failed to fetch available orders"
	MsgOrdersWithRadiusFailed   = "Failed to fetch orders with radius"
	MsgAssignedOrdersFailed     = "Failed to fetch assigned orders"
	MsgAcceptOrderFailed        = "Failed to accept order"
	MsgUpdateOrderStatusFailed  = "Failed to update order status"
	MsgEarningsFailed           = "Failed to fetch earnings"
	MsgEarningsHistoryFailed    = "Failed to fetch earnings history"
	MsgCompletionOTPFailed      = "Failed to request completion OTP"
	MsgCompletionOTPSent        = "Completion OTP sent to customer"
	MsgInvalidStartOTP          = "Invalid start OTP. Please check with customer."
	MsgInvalidCompletionOTP     = "Invalid completion OTP. Please check with customer."
	MsgUpdateLocationFailed     = "Failed to update location"
	MsgStatisticsFailed         = "Failed to get statistics"
)

// GroomerHTTPGateway talks to the /groomer endpoints
type GroomerHTTPGateway struct {
	client *httpclient.Client
}

// NewGroomerHTTPGateway creates a new groomer gateway on top of the shared client
func NewGroomerHTTPGateway(client *httpclient.Client) *GroomerHTTPGateway {
	return &GroomerHTTPGateway{client: client}
}

// GetProfile fetches the full profile of a groomer
func (g *GroomerHTTPGateway) GetProfile(ctx context.Context, groomerID int64) (*models.Groomer, error) {
	var groomer models.Groomer
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/groomer/profile/%d", groomerID), &groomer); err != nil {
		return nil, httpclient.ToAuthError("get_profile", MsgFetchProfileFailed, err)
	}
	return &groomer, nil
}

// UpdateProfile sends the changed fields and returns the stored profile
func (g *GroomerHTTPGateway) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Groomer, error) {
	var groomer models.Groomer
	if err := g.client.PutJSON(ctx, "/groomer/profile", update, &groomer); err != nil {
		return nil, httpclient.ToAuthError("update_profile", MsgUpdateProfileFailed, err)
	}
	return &groomer, nil
}

// UpdateAvailability toggles whether the groomer receives new orders
func (g *GroomerHTTPGateway) UpdateAvailability(ctx context.Context, groomerID int64, available bool) error {
	path := fmt.Sprintf("/groomer/%d/availability", groomerID)
	if err := g.client.PatchJSON(ctx, path, &models.AvailabilityRequest{IsAvailable: available}, nil); err != nil {
		return httpclient.ToAuthError("update_availability", MsgUpdateAvailabilityFailed, err)
	}
	return nil
}

// AvailableOrders lists open orders, optionally narrowed to a service area
func (g *GroomerHTTPGateway) AvailableOrders(ctx context.Context, groomerID int64, query models.OrderQuery) ([]models.Order, error) {
	params := url.Values{}
	params.Set("groomerId", strconv.FormatInt(groomerID, 10))

	fallback := MsgAvailableOrdersFailed
	if query.Latitude != nil && query.Longitude != nil {
		fallback = MsgOrdersWithRadiusFailed
		params.Set("latitude", formatFloat(*query.Latitude))
		params.Set("longitude", formatFloat(*query.Longitude))
		if query.RadiusKm != nil {
			params.Set("radiusKm", formatFloat(*query.RadiusKm))
		}
	}

	var orders []models.Order
	if err := g.client.GetJSON(ctx, "/groomer/orders/available?"+params.Encode(), &orders); err != nil {
		return nil, httpclient.ToAuthError("available_orders", fallback, err)
	}
	return orders, nil
}

// AssignedOrders lists the orders the groomer has taken
func (g *GroomerHTTPGateway) AssignedOrders(ctx context.Context, groomerID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/groomer/orders/assigned/%d", groomerID), &orders); err != nil {
		return nil, httpclient.ToAuthError("assigned_orders", MsgAssignedOrdersFailed, err)
	}
	return orders, nil
}

// AcceptOrder claims an available order
func (g *GroomerHTTPGateway) AcceptOrder(ctx context.Context, req *models.AcceptOrderRequest) error {
	if err := g.client.PostJSON(ctx, "/groomer/orders/accept", req, nil); err != nil {
		return httpclient.ToAuthError("accept_order", MsgAcceptOrderFailed, err)
	}
	return nil
}

// UpdateOrderStatus moves an assigned order along its lifecycle
func (g *GroomerHTTPGateway) UpdateOrderStatus(ctx context.Context, orderID int64, req *models.OrderStatusRequest) error {
	if err := g.client.PutJSON(ctx, fmt.Sprintf("/groomer/orders/%d/status", orderID), req, nil); err != nil {
		return httpclient.ToAuthError("update_order_status", MsgUpdateOrderStatusFailed, err)
	}
	return nil
}

// Earnings returns the summary for the last days days
func (g *GroomerHTTPGateway) Earnings(ctx context.Context, groomerID int64, days int) (*models.Earnings, error) {
	var earnings models.Earnings
	path := fmt.Sprintf("/groomer/%d/earnings?days=%d", groomerID, days)
	if err := g.client.GetJSON(ctx, path, &earnings); err != nil {
		return nil, httpclient.ToAuthError("earnings", MsgEarningsFailed, err)
	}
	return &earnings, nil
}

// EarningsHistory lists completed, paid orders
func (g *GroomerHTTPGateway) EarningsHistory(ctx context.Context, groomerID int64) ([]models.EarningsHistory, error) {
	var history []models.EarningsHistory
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/groomer/%d/earnings/history", groomerID), &history); err != nil {
		return nil, httpclient.ToAuthError("earnings_history", MsgEarningsHistoryFailed, err)
	}
	return history, nil
}

// RequestCompletionOTP has the backend text the customer the code that
// closes orderID
func (g *GroomerHTTPGateway) RequestCompletionOTP(ctx context.Context, orderID, groomerID int64) (string, error) {
	var resp models.AckResponse
	path := fmt.Sprintf("/orders/%d/request-completion-otp", orderID)
	err := g.client.PostJSON(ctx, path, &models.CompletionOTPRequest{GroomerID: groomerID}, &resp)
	if err == nil && resp.Rejected() {
		err = rejected("request_completion_otp", MsgCompletionOTPFailed, resp.Message)
	}
	if err != nil {
		return "", httpclient.ToAuthError("request_completion_otp", MsgCompletionOTPFailed, err)
	}
	if resp.Message != "" {
		return resp.Message, nil
	}
	return MsgCompletionOTPSent, nil
}

// StartService begins orderID with the customer's start code
func (g *GroomerHTTPGateway) StartService(ctx context.Context, orderID int64, req *models.StartServiceRequest) error {
	return g.postAck(ctx, "start_service", MsgInvalidStartOTP, fmt.Sprintf("/orders/%d/start", orderID), req)
}

// CompleteService closes orderID with the customer's completion code
func (g *GroomerHTTPGateway) CompleteService(ctx context.Context, orderID int64, req *models.CompleteServiceRequest) error {
	return g.postAck(ctx, "complete_service", MsgInvalidCompletionOTP, fmt.Sprintf("/orders/%d/complete", orderID), req)
}

// UpdateCurrentLocation reports the groomer's live position through the
// profile endpoint
func (g *GroomerHTTPGateway) UpdateCurrentLocation(ctx context.Context, update *models.CurrentLocationUpdate) error {
	if err := g.client.PutJSON(ctx, "/groomer/profile", update, nil); err != nil {
		return httpclient.ToAuthError("update_current_location", MsgUpdateLocationFailed, err)
	}
	return nil
}

// UpdateLocation moves the groomer's service area
func (g *GroomerHTTPGateway) UpdateLocation(ctx context.Context, groomerID int64, update *models.LocationUpdate) error {
	path := fmt.Sprintf("/groomer/%d/location", groomerID)
	if err := g.client.PatchJSON(ctx, path, update, nil); err != nil {
		return httpclient.ToAuthError("update_location", MsgUpdateLocationFailed, err)
	}
	return nil
}

// Statistics fetches the dashboard summary
func (g *GroomerHTTPGateway) Statistics(ctx context.Context, groomerID int64) (models.Statistics, error) {
	var stats models.Statistics
	if err := g.client.GetJSON(ctx, fmt.Sprintf("/groomer/%d/statistics", groomerID), &stats); err != nil {
		return nil, httpclient.ToAuthError("statistics", MsgStatisticsFailed, err)
	}
	return stats, nil
}

// Health reports whether the backend answers its health endpoint
func (g *GroomerHTTPGateway) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := g.client.GetJSON(ctx, "/health", nil); err != nil {
		logger.WarnCtx(ctx, "Backend health check failed", logger.Err(err))
		return false
	}
	return true
}

func (g *GroomerHTTPGateway) postAck(ctx context.Context, op, fallback, path string, body interface{}) error {
	var resp models.AckResponse
	err := g.client.PostJSON(ctx, path, body, &resp)
	if err == nil && resp.Rejected() {
		err = rejected(op, fallback, resp.Message)
	}
	if err != nil {
		return httpclient.ToAuthError(op, fallback, err)
	}
	return nil
}

func rejected(op, fallback, message string) *models.AuthError {
	if message == "" {
		message = fallback
	}
	return &models.AuthError{Kind: models.ErrAuth, Op: op, Message: message}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
