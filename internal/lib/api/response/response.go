package response

// Response is the uniform JSON envelope of the API.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	statusOK    = "ok"
	statusError = "error"
)

func Ok(data interface{}) Response {
	return Response{
		Status: statusOK,
		Data:   data,
	}
}

func Error(msg string) Response {
	return Response{
		Status:  statusError,
		Message: msg,
	}
}
