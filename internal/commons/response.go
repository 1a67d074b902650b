package commons

// Response is the JSON envelope of every ledger HTTP reply. Data is set on
// success; Errors carries the detail lines of a failure.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: &data}
}

// ErrorResponse builds a failed reply. Empty details are dropped so a bare
// error kind serializes without an errors array.
func ErrorResponse[T any](message string, details ...string) Response[T] {
	var errs []string
	for _, d := range details {
		if d != "" {
			errs = append(errs, d)
		}
	}
	return Response[T]{Success: false, Message: message, Errors: errs}
}
