package lambda

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions.
// Headers stays empty in this API; the gateway contract sets none.
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// TextResponse builds a headerless plain-text response
func TextResponse(status int, body string) *Response {
	return &Response{
		StatusCode: status,
		Headers:    map[string]string{},
		Body:       []byte(body),
	}
}
