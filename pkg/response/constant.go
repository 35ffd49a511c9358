package response

// Date formats used by the JSON marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Envelope constants.
const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Internal server error"
)
