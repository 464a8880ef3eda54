package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession   contextKey = "session"
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyToken     contextKey = "bearer_token"
)

const (
	RoleVisitor = "visitor"
	RoleAdmin   = "admin"
	RoleGuide   = "guide"
)

const (
	StatusCreated      = "created"
	StatusPendingAdmin = "pending_admin"
	StatusApproved     = "approved"
	StatusAccepted     = "accepted"
	StatusCompleted    = "completed"
	StatusCanceled     = "canceled"
	StatusRejected     = "rejected"
)

const (
	ToastSuccess = "success"
	ToastInfo    = "info"
	ToastWarning = "warning"
	ToastError   = "error"
)

const (
	RequestParamID            = "id"
	RequestParamAppointmentID = "appointmentId"
	RequestParamDate          = "date"
	RequestParamCity          = "city"
)

const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04:05"
	TimeFormat12h  = "3:04 PM"
	DisplayDate    = "Jan 2, 2006"
	DisplayStamp   = "Jan 2, 2006 15:04"
	WeekdayHorizon = 120
)

const (
	PathLogin        = "/auth"
	PathRecover      = "/auth/recover_password"
	PathVisitorHome  = "/visitor/home"
	PathStaffHome    = "/staff/home"
	PathVisitorGroup = "/visitor"
	PathStaffGroup   = "/staff"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelSessionScopeName  = "session"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	MinutesToSeconds = 60
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortDir = "sort_dir"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortDir = "DESC"
)
