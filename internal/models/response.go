package models

// Response is the envelope wrapping every API reply.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK builds a success envelope around data.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage builds a success envelope with a human-readable message.
func OKMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList builds a success envelope for a collection, including its count.
func OKList(count int, data interface{}) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Fail builds a failure envelope with an error message.
func Fail(errMsg string) Response {
	return Response{Success: false, Error: errMsg}
}
