package response

// Resp is the JSON body of every non-HTML response.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
