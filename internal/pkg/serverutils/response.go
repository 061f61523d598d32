package serverutils

// APIResponse is the uniform success envelope.
type APIResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Message: message,
		Data:    data,
	}
}

// AppError carries an HTTP status with a user-facing message. Services
// return it when the failure should not be masked as a 500.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}
