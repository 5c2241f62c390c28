// Package jsonresponse enables consistent responses across all handlers.
package jsonresponse

// jsonError provides type for explicit json encoded error response.
type jsonError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) jsonError {
	return jsonError{Error: err.Error()}
}

// jsonData provides type for the shared data envelope.
type jsonData struct {
	Data interface{} `json:"data,omitempty"`
}

// Data wraps a given payload into the data envelope every handler responds with.
func Data(payload interface{}) jsonData {
	return jsonData{Data: payload}
}
