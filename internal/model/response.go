package model

// ErrorResponse is the uniform error wire shape: a short status label
// plus a safe, human-readable message. Credential material never
// appears in either field.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}
