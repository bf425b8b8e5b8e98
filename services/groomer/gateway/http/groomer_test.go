package gateway_http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/piresc/groomer/internal/pkg/http"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method string
	URI    string
	Body   map[string]interface{}
}

func newGateway(t *testing.T, status int, response interface{}) (*GroomerHTTPGateway, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.URI = r.URL.RequestURI()
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			json.Unmarshal(raw, &captured.Body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(server.Close)

	client := httpclient.NewClient(httpclient.Config{BaseURL: server.URL, Timeout: 5 * time.Second}, logger.NewNop())
	return NewGroomerHTTPGateway(client), captured
}

func floatPtr(v float64) *float64 { return &v }

func TestGroomerHTTPGateway_GetProfile(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, models.Groomer{ID: 11, Name: "Asha"})

	groomer, err := gw.GetProfile(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, "Asha", groomer.Name)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/groomer/profile/11", captured.URI)
}

func TestGroomerHTTPGateway_UpdateProfile(t *testing.T) {
	bio := "Certified pet stylist"
	gw, captured := newGateway(t, http.StatusOK, models.Groomer{ID: 11, Bio: bio})

	groomer, err := gw.UpdateProfile(context.Background(), &models.ProfileUpdate{ID: 11, Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, bio, groomer.Bio)
	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/groomer/profile", captured.URI)
	assert.Equal(t, map[string]interface{}{"id": float64(11), "bio": bio}, captured.Body)
}

func TestGroomerHTTPGateway_UpdateAvailability(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, map[string]bool{"success": true})

	err := gw.UpdateAvailability(context.Background(), 11, false)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "/groomer/11/availability", captured.URI)
	assert.Equal(t, map[string]interface{}{"isAvailable": false}, captured.Body)
}

func TestGroomerHTTPGateway_AvailableOrders(t *testing.T) {
	tests := []struct {
		name        string
		query       models.OrderQuery
		expectedURI string
	}{
		{
			name:        "no area",
			query:       models.OrderQuery{},
			expectedURI: "/groomer/orders/available?groomerId=11",
		},
		{
			name:        "area with radius",
			query:       models.OrderQuery{Latitude: floatPtr(12.9716), Longitude: floatPtr(77.5946), RadiusKm: floatPtr(10)},
			expectedURI: "/groomer/orders/available?groomerId=11&latitude=12.9716&longitude=77.5946&radiusKm=10",
		},
		{
			name:        "area without radius",
			query:       models.OrderQuery{Latitude: floatPtr(12.5), Longitude: floatPtr(77.25)},
			expectedURI: "/groomer/orders/available?groomerId=11&latitude=12.5&longitude=77.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, captured := newGateway(t, http.StatusOK, []models.Order{{ID: 1, Status: models.OrderPending}})

			orders, err := gw.AvailableOrders(context.Background(), 11, tt.query)

			require.NoError(t, err)
			assert.Len(t, orders, 1)
			assert.Equal(t, tt.expectedURI, captured.URI)
		})
	}
}

func TestGroomerHTTPGateway_AvailableOrdersFallbackMessage(t *testing.T) {
	tests := []struct {
		name        string
		query       models.OrderQuery
		expectedMsg string
	}{
		{name: "plain listing", query: models.OrderQuery{}, expectedMsg: MsgAvailableOrdersFailed},
		{name: "area listing", query: models.OrderQuery{Latitude: floatPtr(1), Longitude: floatPtr(2)}, expectedMsg: MsgOrdersWithRadiusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newGateway(t, http.StatusBadRequest, map[string]string{})

			_, err := gw.AvailableOrders(context.Background(), 11, tt.query)

			assert.ErrorIs(t, err, models.ErrAuth)
			assert.Equal(t, tt.expectedMsg, models.UserMessage(err, ""))
		})
	}
}

func TestGroomerHTTPGateway_AssignedOrders(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, []models.Order{{ID: 4, Status: models.OrderAssigned}, {ID: 5, Status: models.OrderInProgress}})

	orders, err := gw.AssignedOrders(context.Background(), 11)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "/groomer/orders/assigned/11", captured.URI)
}

func TestGroomerHTTPGateway_AcceptOrder(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, map[string]bool{"success": true})

	err := gw.AcceptOrder(context.Background(), &models.AcceptOrderRequest{OrderID: 7, GroomerID: 11, EstimatedArrival: "30 min"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/groomer/orders/accept", captured.URI)
	assert.Equal(t, map[string]interface{}{"orderId": float64(7), "groomerId": float64(11), "estimatedArrival": "30 min"}, captured.Body)
}

func TestGroomerHTTPGateway_AcceptOrderConflict(t *testing.T) {
	gw, _ := newGateway(t, http.StatusConflict, map[string]string{"message": "Order already taken"})

	err := gw.AcceptOrder(context.Background(), &models.AcceptOrderRequest{OrderID: 7, GroomerID: 11})

	assert.ErrorIs(t, err, models.ErrAuth)
	assert.Equal(t, "Order already taken", models.UserMessage(err, ""))
}

func TestGroomerHTTPGateway_UpdateOrderStatus(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, nil)

	err := gw.UpdateOrderStatus(context.Background(), 7, &models.OrderStatusRequest{Status: models.OrderInProgress, GroomerID: 11})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/groomer/orders/7/status", captured.URI)
	assert.Equal(t, map[string]interface{}{"status": "IN_PROGRESS", "groomerId": float64(11)}, captured.Body)
}

func TestGroomerHTTPGateway_Earnings(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, models.Earnings{TotalEarnings: 4200, CompletedOrders: 6})

	earnings, err := gw.Earnings(context.Background(), 11, 7)

	require.NoError(t, err)
	assert.Equal(t, 4200.0, earnings.TotalEarnings)
	assert.Equal(t, "/groomer/11/earnings?days=7", captured.URI)
}

func TestGroomerHTTPGateway_EarningsHistory(t *testing.T) {
	gw, captured := newGateway(t, http.StatusInternalServerError, map[string]string{})

	_, err := gw.EarningsHistory(context.Background(), 11)

	assert.ErrorIs(t, err, models.ErrAuth)
	assert.Equal(t, MsgEarningsHistoryFailed, models.UserMessage(err, ""))
	assert.Equal(t, "/groomer/11/earnings/history", captured.URI)
}

func TestGroomerHTTPGateway_Health(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected bool
	}{
		{name: "healthy", status: http.StatusOK, expected: true},
		{name: "client error", status: http.StatusNotFound, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, captured := newGateway(t, tt.status, map[string]string{"status": "ok"})

			assert.Equal(t, tt.expected, gw.Health(context.Background()))
			assert.Equal(t, "/health", captured.URI)
		})
	}
}

func TestGroomerHTTPGateway_RequestCompletionOTP(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		response    interface{}
		expectedMsg string
		expectError bool
	}{
		{name: "server message", status: http.StatusOK, response: map[string]interface{}{"success": true, "message": "Code sent to Ravi"}, expectedMsg: "Code sent to Ravi"},
		{name: "default message", status: http.StatusOK, response: map[string]interface{}{}, expectedMsg: MsgCompletionOTPSent},
		{name: "rejected in body", status: http.StatusOK, response: map[string]interface{}{"success": false}, expectedMsg: MsgCompletionOTPFailed, expectError: true},
		{name: "order not started", status: http.StatusBadRequest, response: map[string]string{"message": "Order is not in progress"}, expectedMsg: "Order is not in progress", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			gw, captured := newGateway(t, tt.status, tt.response)

			// Act
			msg, err := gw.RequestCompletionOTP(context.Background(), 42, 11)

			// Assert
			assert.Equal(t, http.MethodPost, captured.Method)
			assert.Equal(t, "/orders/42/request-completion-otp", captured.URI)
			assert.Equal(t, map[string]interface{}{"groomerId": float64(11)}, captured.Body)
			if tt.expectError {
				assert.ErrorIs(t, err, models.ErrAuth)
				assert.Equal(t, tt.expectedMsg, models.UserMessage(err, ""))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestGroomerHTTPGateway_ServiceCodes(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		response     interface{}
		call         func(gw *GroomerHTTPGateway) error
		expectedURI  string
		expectedBody map[string]interface{}
		expectedMsg  string
	}{
		{
			name:     "start accepted",
			status:   http.StatusOK,
			response: map[string]interface{}{"id": 42, "status": "IN_PROGRESS"},
			call: func(gw *GroomerHTTPGateway) error {
				return gw.StartService(context.Background(), 42, &models.StartServiceRequest{StartOTP: "123456", GroomerID: 11})
			},
			expectedURI:  "/orders/42/start",
			expectedBody: map[string]interface{}{"startOtp": "123456", "groomerId": float64(11)},
		},
		{
			name:     "start rejected uses default",
			status:   http.StatusBadRequest,
			response: map[string]string{},
			call: func(gw *GroomerHTTPGateway) error {
				return gw.StartService(context.Background(), 42, &models.StartServiceRequest{StartOTP: "000000", GroomerID: 11})
			},
			expectedURI:  "/orders/42/start",
			expectedBody: map[string]interface{}{"startOtp": "000000", "groomerId": float64(11)},
			expectedMsg:  MsgInvalidStartOTP,
		},
		{
			name:     "complete accepted",
			status:   http.StatusOK,
			response: map[string]interface{}{"success": true},
			call: func(gw *GroomerHTTPGateway) error {
				return gw.CompleteService(context.Background(), 42, &models.CompleteServiceRequest{CompletionOTP: "654321", GroomerID: 11})
			},
			expectedURI:  "/orders/42/complete",
			expectedBody: map[string]interface{}{"completionOtp": "654321", "groomerId": float64(11), "groomerNotes": ""},
		},
		{
			name:     "complete rejected in body",
			status:   http.StatusOK,
			response: map[string]interface{}{"success": false, "message": "OTP expired"},
			call: func(gw *GroomerHTTPGateway) error {
				return gw.CompleteService(context.Background(), 42, &models.CompleteServiceRequest{CompletionOTP: "654321", GroomerID: 11, GroomerNotes: "Nails trimmed"})
			},
			expectedURI:  "/orders/42/complete",
			expectedBody: map[string]interface{}{"completionOtp": "654321", "groomerId": float64(11), "groomerNotes": "Nails trimmed"},
			expectedMsg:  "OTP expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			gw, captured := newGateway(t, tt.status, tt.response)

			// Act
			err := tt.call(gw)

			// Assert
			assert.Equal(t, http.MethodPost, captured.Method)
			assert.Equal(t, tt.expectedURI, captured.URI)
			assert.Equal(t, tt.expectedBody, captured.Body)
			if tt.expectedMsg != "" {
				assert.ErrorIs(t, err, models.ErrAuth)
				assert.Equal(t, tt.expectedMsg, models.UserMessage(err, ""))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGroomerHTTPGateway_UpdateCurrentLocation(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, models.Groomer{ID: 11})

	err := gw.UpdateCurrentLocation(context.Background(), &models.CurrentLocationUpdate{ID: 11, CurrentLatitude: 12.9716, CurrentLongitude: 77.5946})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/groomer/profile", captured.URI)
	assert.Equal(t, map[string]interface{}{"id": float64(11), "currentLatitude": 12.9716, "currentLongitude": 77.5946}, captured.Body)
}

func TestGroomerHTTPGateway_UpdateLocation(t *testing.T) {
	tests := []struct {
		name         string
		update       models.LocationUpdate
		status       int
		expectedBody map[string]interface{}
		expectError  bool
	}{
		{
			name:         "with radius",
			update:       models.LocationUpdate{Latitude: 13.0827, Longitude: 80.2707, ServiceRadiusKm: floatPtr(8)},
			status:       http.StatusOK,
			expectedBody: map[string]interface{}{"latitude": 13.0827, "longitude": 80.2707, "serviceRadiusKm": float64(8)},
		},
		{
			name:         "without radius",
			update:       models.LocationUpdate{Latitude: 13.0827, Longitude: 80.2707},
			status:       http.StatusOK,
			expectedBody: map[string]interface{}{"latitude": 13.0827, "longitude": 80.2707},
		},
		{
			name:         "server failure",
			update:       models.LocationUpdate{Latitude: 13.0827, Longitude: 80.2707},
			status:       http.StatusInternalServerError,
			expectedBody: map[string]interface{}{"latitude": 13.0827, "longitude": 80.2707},
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			gw, captured := newGateway(t, tt.status, map[string]string{})

			// Act
			err := gw.UpdateLocation(context.Background(), 11, &tt.update)

			// Assert
			assert.Equal(t, http.MethodPatch, captured.Method)
			assert.Equal(t, "/groomer/11/location", captured.URI)
			assert.Equal(t, tt.expectedBody, captured.Body)
			if tt.expectError {
				assert.Equal(t, MsgUpdateLocationFailed, models.UserMessage(err, ""))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGroomerHTTPGateway_Statistics(t *testing.T) {
	gw, captured := newGateway(t, http.StatusOK, map[string]interface{}{"totalOrders": 40, "averageRating": 4.8})

	stats, err := gw.Statistics(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, "/groomer/11/statistics", captured.URI)
	assert.Equal(t, float64(40), stats["totalOrders"])
	assert.Equal(t, 4.8, stats["averageRating"])
}

func TestGroomerHTTPGateway_StatisticsFailure(t *testing.T) {
	gw, _ := newGateway(t, http.StatusNotFound, map[string]string{})

	stats, err := gw.Statistics(context.Background(), 11)

	assert.Nil(t, stats)
	assert.Equal(t, MsgStatisticsFailed, models.UserMessage(err, ""))
}
