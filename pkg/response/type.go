package response

// Resp is the JSON body of every failed request.
type Resp struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

const DefaultErrorMessage = "Internal server error"
