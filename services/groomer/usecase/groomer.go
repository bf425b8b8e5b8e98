package usecase

import (
	"context"

	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/internal/utils"
)

const (
	MsgNotLoggedIn     = "please log in again"
	MsgInvalidOrder    = "select a valid order"
	MsgInvalidStatus   = "select a valid order status"
	MsgInvalidPeriod   = "select today, week or month"
	MsgIncompleteArea  = "latitude and longitude must be given together"
	MsgInvalidRadius   = "radius must be greater than zero"
	MsgInvalidProfile  = "check the profile fields and try again"
	MsgNothingToUpdate = "nothing to update"
	MsgInvalidStage    = "choose start or end"
	MsgInvalidCode     = "enter a valid 6-digit code"
	MsgInvalidLocation = "check the location and radius"

	// The start code reaches the customer when the order is assigned
	MsgStartOTPWithCustomer = "Start OTP was sent to customer when order was assigned. Please get the OTP from customer."
)

// Profile fetches the latest profile from the backend
func (u *GroomerUsecase) Profile(ctx context.Context) (*models.Groomer, error) {
	groomerID, err := u.groomerID("get_profile")
	if err != nil {
		return nil, err
	}
	return u.groomerGW.GetProfile(ctx, groomerID)
}

// UpdateProfile saves the changed fields and refreshes the stored profile
func (u *GroomerUsecase) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.Groomer, error) {
	const op = "update_profile"
	if update == nil {
		return nil, models.NewValidationError(op, MsgNothingToUpdate)
	}
	groomerID, err := u.groomerID(op)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Struct(update); err != nil {
		return nil, models.NewValidationError(op, MsgInvalidProfile)
	}

	req := *update
	req.ID = groomerID
	updated, err := u.groomerGW.UpdateProfile(ctx, &req)
	if err != nil {
		return nil, err
	}

	if err := u.authUC.UpdateProfile(ctx, updated); err != nil {
		logger.WarnCtx(ctx, "Profile saved but session not refreshed", logger.Err(err))
	}
	logger.InfoCtx(ctx, "Profile updated", logger.Int64("groomer_id", groomerID))
	return updated, nil
}

// SetAvailability toggles whether new orders are offered
func (u *GroomerUsecase) SetAvailability(ctx context.Context, available bool) error {
	session := u.authUC.Session()
	if !session.IsAuthenticated() {
		return notLoggedIn("update_availability")
	}

	if err := u.groomerGW.UpdateAvailability(ctx, session.Groomer.ID, available); err != nil {
		return err
	}

	profile := *session.Groomer
	profile.IsAvailableForOrders = available
	if err := u.authUC.UpdateProfile(ctx, &profile); err != nil {
		logger.WarnCtx(ctx, "Availability saved but session not refreshed", logger.Err(err))
	}
	logger.InfoCtx(ctx, "Availability updated",
		logger.Int64("groomer_id", profile.ID),
		logger.Bool("available", available))
	return nil
}

// AvailableOrders lists open orders. When the query names a location,
// each order with coordinates gets its distance from that point.
func (u *GroomerUsecase) AvailableOrders(ctx context.Context, query models.OrderQuery) ([]models.Order, error) {
	const op = "available_orders"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return nil, err
	}
	if (query.Latitude == nil) != (query.Longitude == nil) {
		return nil, models.NewValidationError(op, MsgIncompleteArea)
	}
	if query.RadiusKm != nil && *query.RadiusKm <= 0 {
		return nil, models.NewValidationError(op, MsgInvalidRadius)
	}

	orders, err := u.groomerGW.AvailableOrders(ctx, groomerID, query)
	if err != nil {
		return nil, err
	}

	origin, ok := utils.GeoPointFrom(query.Latitude, query.Longitude)
	if !ok {
		return orders, nil
	}
	for i := range orders {
		point, ok := utils.GeoPointFrom(orders[i].Latitude, orders[i].Longitude)
		if !ok {
			continue
		}
		distance := utils.CalculateDistance(origin, point)
		orders[i].DistanceFromGroomer = &distance
	}

	logger.DebugCtx(ctx, "Fetched orders near groomer",
		logger.String("area", utils.EncodeArea(origin)),
		logger.Int("count", len(orders)))
	return orders, nil
}

// AssignedOrders lists the orders this groomer has taken
func (u *GroomerUsecase) AssignedOrders(ctx context.Context) ([]models.Order, error) {
	groomerID, err := u.groomerID("assigned_orders")
	if err != nil {
		return nil, err
	}
	return u.groomerGW.AssignedOrders(ctx, groomerID)
}

// AcceptOrder claims orderID for this groomer
func (u *GroomerUsecase) AcceptOrder(ctx context.Context, orderID int64, estimatedArrival string) error {
	const op = "accept_order"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return err
	}
	if orderID <= 0 {
		return models.NewValidationError(op, MsgInvalidOrder)
	}

	err = u.groomerGW.AcceptOrder(ctx, &models.AcceptOrderRequest{
		OrderID:          orderID,
		GroomerID:        groomerID,
		EstimatedArrival: estimatedArrival,
	})
	if err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Order accepted", logger.Int64("order_id", orderID))
	return nil
}

// UpdateOrderStatus moves an assigned order to status
func (u *GroomerUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus, notes string) error {
	const op = "update_order_status"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return err
	}
	if orderID <= 0 {
		return models.NewValidationError(op, MsgInvalidOrder)
	}
	if !status.Valid() {
		return models.NewValidationError(op, MsgInvalidStatus)
	}

	return u.groomerGW.UpdateOrderStatus(ctx, orderID, &models.OrderStatusRequest{
		Status:    status,
		Notes:     notes,
		GroomerID: groomerID,
	})
}

// RequestServiceOTP makes sure the customer holds the code for stage of
// orderID. Only the completion code is sent on request.
func (u *GroomerUsecase) RequestServiceOTP(ctx context.Context, orderID int64, stage models.ServiceStage) (string, error) {
	const op = "request_service_otp"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return "", err
	}
	if err := validateServiceOrder(op, orderID, stage); err != nil {
		return "", err
	}

	if stage == models.ServiceStart {
		return MsgStartOTPWithCustomer, nil
	}
	return u.groomerGW.RequestCompletionOTP(ctx, orderID, groomerID)
}

// VerifyServiceOTP starts or completes orderID with the customer's code.
// Malformed codes are rejected without a network call.
func (u *GroomerUsecase) VerifyServiceOTP(ctx context.Context, orderID int64, stage models.ServiceStage, code, notes string) error {
	const op = "verify_service_otp"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return err
	}
	if err := validateServiceOrder(op, orderID, stage); err != nil {
		return err
	}
	if !utils.IsOTPCode(code) {
		return models.NewValidationError(op, MsgInvalidCode)
	}

	if stage == models.ServiceStart {
		err = u.groomerGW.StartService(ctx, orderID, &models.StartServiceRequest{StartOTP: code, GroomerID: groomerID})
	} else {
		err = u.groomerGW.CompleteService(ctx, orderID, &models.CompleteServiceRequest{
			CompletionOTP: code,
			GroomerID:     groomerID,
			GroomerNotes:  notes,
		})
	}
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Service code accepted",
		logger.Int64("order_id", orderID),
		logger.String("stage", string(stage)))
	return nil
}

// UpdateCurrentLocation reports the groomer's live position
func (u *GroomerUsecase) UpdateCurrentLocation(ctx context.Context, latitude, longitude float64) error {
	const op = "update_current_location"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return err
	}

	update := &models.CurrentLocationUpdate{ID: groomerID, CurrentLatitude: latitude, CurrentLongitude: longitude}
	if err := u.validate.Struct(update); err != nil {
		return models.NewValidationError(op, MsgInvalidLocation)
	}
	if err := u.groomerGW.UpdateCurrentLocation(ctx, update); err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Current location updated",
		logger.String("area", utils.EncodeArea(utils.GeoPoint{Latitude: latitude, Longitude: longitude})))
	return nil
}

// UpdateServiceArea moves the service area and refreshes the stored profile
func (u *GroomerUsecase) UpdateServiceArea(ctx context.Context, update models.LocationUpdate) error {
	const op = "update_location"
	session := u.authUC.Session()
	if !session.IsAuthenticated() {
		return notLoggedIn(op)
	}
	if err := u.validate.Struct(&update); err != nil {
		return models.NewValidationError(op, MsgInvalidLocation)
	}

	if err := u.groomerGW.UpdateLocation(ctx, session.Groomer.ID, &update); err != nil {
		return err
	}

	profile := *session.Groomer
	profile.Latitude = &update.Latitude
	profile.Longitude = &update.Longitude
	if update.ServiceRadiusKm != nil {
		profile.ServiceRadius = *update.ServiceRadiusKm
	}
	if err := u.authUC.UpdateProfile(ctx, &profile); err != nil {
		logger.WarnCtx(ctx, "Location saved but session not refreshed", logger.Err(err))
	}
	logger.InfoCtx(ctx, "Service area updated",
		logger.Int64("groomer_id", profile.ID),
		logger.String("area", utils.EncodeArea(utils.GeoPoint{Latitude: update.Latitude, Longitude: update.Longitude})))
	return nil
}

// Earnings returns the summary for period
func (u *GroomerUsecase) Earnings(ctx context.Context, period models.EarningsPeriod) (*models.Earnings, error) {
	const op = "earnings"
	groomerID, err := u.groomerID(op)
	if err != nil {
		return nil, err
	}
	days, ok := period.Days()
	if !ok {
		return nil, models.NewValidationError(op, MsgInvalidPeriod)
	}
	return u.groomerGW.Earnings(ctx, groomerID, days)
}

// EarningsHistory lists completed, paid orders
func (u *GroomerUsecase) EarningsHistory(ctx context.Context) ([]models.EarningsHistory, error) {
	groomerID, err := u.groomerID("earnings_history")
	if err != nil {
		return nil, err
	}
	return u.groomerGW.EarningsHistory(ctx, groomerID)
}

// Statistics fetches the dashboard summary
func (u *GroomerUsecase) Statistics(ctx context.Context) (models.Statistics, error) {
	groomerID, err := u.groomerID("statistics")
	if err != nil {
		return nil, err
	}
	return u.groomerGW.Statistics(ctx, groomerID)
}

// Health reports whether the backend is reachable
func (u *GroomerUsecase) Health(ctx context.Context) bool {
	return u.groomerGW.Health(ctx)
}

func (u *GroomerUsecase) groomerID(op string) (int64, error) {
	session := u.authUC.Session()
	if !session.IsAuthenticated() {
		return 0, notLoggedIn(op)
	}
	return session.Groomer.ID, nil
}

func validateServiceOrder(op string, orderID int64, stage models.ServiceStage) error {
	if orderID <= 0 {
		return models.NewValidationError(op, MsgInvalidOrder)
	}
	if !stage.Valid() {
		return models.NewValidationError(op, MsgInvalidStage)
	}
	return nil
}

func notLoggedIn(op string) error {
	return &models.AuthError{Kind: models.ErrNotAuthenticated, Op: op, Message: MsgNotLoggedIn}
}
