package errors

// User-friendly error messages
const (
	MsgPropertyNotFound    = "Property not found."
	MsgServiceUnavailable  = "We're unable to reach our listing stores right now. Please try again in a few minutes."
	MsgRateLimited         = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInvalidParameters   = "The provided parameters are invalid. Please check your input and try again."
	MsgConstraintViolation = "The request conflicts with existing data. Check the owner and unique fields."
	MsgPartialWrite        = "The listing could not be saved completely. Please check your listings before retrying."
	MsgEntityBusy          = "This listing is being changed by another request. Please try again."
	MsgUnauthorized        = "Authentication is required."
	MsgForbidden           = "You are not allowed to change this listing."
	MsgEmailTaken          = "Email already registered."
	MsgInternalError       = "Something went wrong on our end. Please try again later."
)
