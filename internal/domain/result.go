package entity

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response messages kept byte-for-byte compatible with existing clients.
const (
	MsgUserRegistered      = "User registered successfully"
	MsgUserExists          = "User already exists"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgNotificationAdded   = "Notification added successfully"
	MsgInvalidHash         = "Invalid Hash"
	MsgInvalidBody         = "invalid request body"
	MsgInternalError       = "internal server error"
	MsgProviderUnavailable = "email provider is not configured"
)

// Result is the in-body status envelope returned by most routes.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

func Success(message string) Result {
	return Result{Status: StatusSuccess, Message: message}
}

func Failure(message string) Result {
	return Result{Status: StatusError, Message: message}
}
