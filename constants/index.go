package constants

const (
	MISSING_LOGIN_INPUT   = "Email and password are required"
	EMAIL_EXISTS          = "Email already exists!"
	USER_NOT_FOUND        = "User not found!"
	INVALID_PASSWORD      = "Incorrect password!"
	NOT_LOGGED_IN         = "You must be logged in"
	CAN_NOT_HASH_PASSWORD = "Can not hash password"

	CAFE_NOT_FOUND = "No cafe with id %d found!"
	ERROR_ADD_CAFE = "Error adding cafe to database"

	MISSING_COMMENT_TEXT = "Comment text is required"

	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Create failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Can not parse data from locals"
	DATA_INPUT_IS_NOT_NUMBER   = "Id param must be a number"
)
