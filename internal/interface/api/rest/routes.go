package rest

const (
	// auth
	RouteAuth     = "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"

	RouteUsers = "/users"
	RouteUser  = RouteUsers + "/:user_id"

	// ops
	RouteHealth  = "/health"
	RouteMetrics = "/metrics"
)

const (
	MsgInvalidPayload    = "Invalid payload"
	MsgEmailRegistered   = "Email already registered"
	MsgCredentials       = "Email and password required"
	MsgInvalidCredential = "Invalid credentials"
	MsgRegisterFailed    = "Registration failed"
	MsgLoginFailed       = "Login failed"
	MsgForbidden         = "Forbidden"
	MsgNotFound          = "Not found"
	MsgUnauthorized      = "Unauthorized"
	MsgInvalidQuery      = "Invalid query"
	MsgGetUsersFailed    = "Failed to get users"
	MsgGetUserFailed     = "Failed to get user"
)
