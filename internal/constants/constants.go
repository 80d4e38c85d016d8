package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
)

const (
	// 服務名稱，同時也是註冊中心的key
	ServiceGateway = "gateway"
	ServiceProduct = "product"
	ServiceUser    = "user"
	ServiceOrder   = "order"
)

const (
	UserIDHeader = "X-User-ID"
)
