package models

// OrderStatus is the lifecycle status of a grooming order
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderAssigned   OrderStatus = "ASSIGNED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderAssigned, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is a grooming request visible to a groomer
type Order struct {
	ID                  int64       `json:"id"`
	CustomerName        string      `json:"customerName"`
	CustomerPhone       string      `json:"customerPhone"`
	PetName             string      `json:"petName"`
	PetType             string      `json:"petType"`
	ServiceName         string      `json:"serviceName"`
	ServicePrice        float64     `json:"servicePrice"`
	Address             string      `json:"address"`
	Status              OrderStatus `json:"status"`
	Latitude            *float64    `json:"latitude,omitempty"`
	Longitude           *float64    `json:"longitude,omitempty"`
	DistanceFromGroomer *float64    `json:"distanceFromGroomer,omitempty"`
	PreferredDate       string      `json:"preferredDate,omitempty"`
	SpecialNotes        string      `json:"specialNotes,omitempty"`
	GroomerID           *int64      `json:"groomerId,omitempty"`
	CreatedAt           string      `json:"createdAt,omitempty"`
}

// OrderQuery narrows the available orders listing to a service area
type OrderQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// AcceptOrderRequest is sent when a groomer takes an order
type AcceptOrderRequest struct {
	OrderID          int64  `json:"orderId"`
	GroomerID        int64  `json:"groomerId"`
	EstimatedArrival string `json:"estimatedArrival,omitempty"`
}

// OrderStatusRequest updates an order's lifecycle status
type OrderStatusRequest struct {
	Status    OrderStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	GroomerID int64       `json:"groomerId"`
}

// EarningsPeriod selects the earnings aggregation window
type EarningsPeriod string

const (
	PeriodToday EarningsPeriod = "today"
	PeriodWeek  EarningsPeriod = "week"
	PeriodMonth EarningsPeriod = "month"
)

// Earnings is the earnings summary for a groomer
type Earnings struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	TodayEarnings     float64 `json:"todayEarnings"`
	WeeklyEarnings    float64 `json:"weeklyEarnings"`
	MonthlyEarnings   float64 `json:"monthlyEarnings"`
	CompletedOrders   int     `json:"completedOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	AverageRating     float64 `json:"averageRating,omitempty"`
	RecentOrders      []Order `json:"recentTransactions,omitempty"`
}

// Days returns the lookback window the earnings endpoint expects
func (p EarningsPeriod) Days() (int, bool) {
	switch p {
	case PeriodToday:
		return 1, true
	case PeriodWeek:
		return 7, true
	case PeriodMonth:
		return 30, true
	}
	return 0, false
}

// EarningsHistory is one completed, paid order
type EarningsHistory struct {
	OrderID      int64   `json:"orderId"`
	CustomerName string  `json:"customerName"`
	ServiceName  string  `json:"serviceName"`
	Amount       float64 `json:"amount"`
	CompletedAt  string  `json:"completedAt"`
}

// AvailabilityRequest toggles whether a groomer receives orders
type AvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}
