package message

const (
	InvalidInput     = "Invalid input."
	EnvErrFmt        = "environment variable is not set: %s"
	UserRegistered   = "User registered successfully"
	UserUpdated      = "User updated successfully"
	UserNotFound     = "User not found by email"
	UserNotFoundByID = "User not found"
	UserNotActive    = "User is not active"
	InvalidPassword  = "Invalid password"
	EmailTaken       = "E-mail or document already registered"
	CommonRoute      = "Common route!"
	ProtectedRoute   = "Protected route!"
	PayloadTooLarge  = "Request body too large."
	UnsupportedMedia = "Content-Type must be application/json"
	RequestTimeout   = "Request cancelled or timeout"
)
