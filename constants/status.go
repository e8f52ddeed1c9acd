package constants

// Room catalog states
const (
	RoomStateReadyToServe = "READY_TO_SERVE"
	RoomStateBeingCleaned = "BEING_CLEANED"
	RoomStateMaintenance  = "MAINTENANCE"
	RoomStateOccupied     = "OCCUPIED"
)

// Booking states
const (
	BookingStatePending   = "PENDING"
	BookingStateCommited  = "COMMITED"
	BookingStateCancelled = "CANCELLED"
	BookingStateExpired   = "EXPIRED"
)

// Guest account status
const (
	GuestStatusActive   = 1
	GuestStatusInactive = 0
)

// Roles
const (
	RoleGuest      = 0
	RoleSuperAdmin = 1
	RoleStaff      = 2
)

// Payment types
const (
	PaymentTypeCash         = 0
	PaymentTypeBankTransfer = 1
	PaymentTypeQR           = 2
)

// Price range buckets accepted by the availability search
const (
	PriceRangeLow     = "0-500"
	PriceRangeMid     = "500-1000"
	PriceRangeHigh    = "1000-2000"
	PriceRangePremium = "2000+"
)

// Sort orders accepted by the availability search
const (
	SortPriceLowHigh = "low-high"
	SortPriceHighLow = "high-low"
)

// Days after the booking start date during which a guest may still cancel
const CancelWindowDays = 3

// Hours a PENDING booking may stay unconfirmed before the expiry job closes it
const PendingExpiryHours = 24
