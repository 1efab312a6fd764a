package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat are the event coordinates the calendar view reads.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04"
)
