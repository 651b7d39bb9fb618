package response

import "net/http"

// CustomError is returned by usecases and carries the HTTP status the handler
// should answer with. It satisfies the error interface so it can travel
// through helpers that only know about error.
type CustomError struct {
	StatusCode     int         `json:"status_code"`
	Status         bool        `json:"status"`
	Message        string      `json:"message"`
	AdditionalInfo interface{} `json:"additional_info,omitempty"`
}

func (e *CustomError) Error() string {
	return e.Message
}

type Success struct {
	StatusCode int         `json:"status_code"`
	Status     bool        `json:"status"`
	Message    string      `json:"message"`
	Payload    interface{} `json:"payload,omitempty"`
}

func BadRequestError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusBadRequest,
		Status:     false,
		Message:    message,
	}
}

func NotFoundError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusNotFound,
		Status:     false,
		Message:    message,
	}
}

func UnauthorizedError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusUnauthorized,
		Status:     false,
		Message:    message,
	}
}

func UnauthorizedErrorWithAdditionalInfo(info interface{}, messages ...string) *CustomError {
	message := "Unauthorized"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &CustomError{
		StatusCode:     http.StatusUnauthorized,
		Status:         false,
		Message:        message,
		AdditionalInfo: info,
	}
}

func ForbiddenError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusForbidden,
		Status:     false,
		Message:    message,
	}
}

// RepositoryError marks failures coming out of the data layer.
func RepositoryError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Status:     false,
		Message:    message,
	}
}

func GeneralError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Status:     false,
		Message:    message,
	}
}

func GeneralSuccess() *Success {
	return &Success{
		StatusCode: http.StatusOK,
		Status:     true,
		Message:    "Success",
	}
}

func GeneralSuccessCustomMessageAndPayload(message string, payload interface{}) *Success {
	return &Success{
		StatusCode: http.StatusOK,
		Status:     true,
		Message:    message,
		Payload:    payload,
	}
}

func CreatedSuccessWithPayload(payload interface{}) *Success {
	return &Success{
		StatusCode: http.StatusCreated,
		Status:     true,
		Message:    "Created successfully",
		Payload:    payload,
	}
}
