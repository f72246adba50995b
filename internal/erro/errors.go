package erro

const AdsServiceUnavalaible = "Ads-Service is unavailable"
const RequestTimedOut = "Request timed out"
const ClientErrorType = "Client"
const ServerErrorType = "Server"
const ErrorType = "type"
const ErrorMessage = "message"

const (
	ErrorInvalidDataReq         = "Invalid data in request's body"
	ErrorInvalidReqMethod       = "Invalid request method"
	ErrorInvalidPathParameter   = "Invalid path parameter"
	ErrorInvalidQueryParameter  = "Invalid query parameter"
	ErrorReadAll                = "ReadAll error"
	ErrorUnmarshal              = "Data unmarshal error: %v"
	ErrorMarshal                = "Data marshal error: %v"
	ErrorMissingUserID          = "Error missing userID"
	ErrorMissingSessionID       = "Error missing sessionID"
	ErrorRequiredSession        = "Required Session in Cookie"
	ErrorInvalidSession         = "Invalid Session Data!"
	ErrorAlreadyAuthorized      = "You are already authorized"
	ErrorTooManyRequests        = "Too Many Requests"
	ErrorNotEmail               = "This email format is not supported"
	ErrorInvalidState           = "Unknown state code"
	ErrorEmailNotRegister       = "Not registered email has been entered"
	ErrorUniqueEmail            = "Already registered email has been entered"
	ErrorIncorrectPassword      = "Incorrect password has been entered"
	ErrorIDNotRegister          = "Unregistered id has been entered"
	ErrorInvalidUserIDFormat    = "Invalid userID format in request"
	ErrorInvalidListingIDFormat = "Invalid listingID format in request"
	ErrorListingNotFound        = "Listing not found"
	ErrorDraftNotFound          = "Draft not found"
	ErrorForeignListing         = "Attempt to change someone else's listing"
	ErrorEmptyPhotoBatch        = "No photos in request"
	ErrorLargeFile              = "File too large - max 10 MB"
	ErrorInvalidFileFormat      = "Invalid file format"
	ErrorContextCanceled        = "Context canceled or timeout"
	ErrorOverflowTaskQ          = "Task queue is full"
	ErrorAfterReqUsers          = "Error after request into users: %v"
	ErrorAfterReqListings       = "Error after request into listings: %v"
	ErrorGenerateHashPassword   = "Generate HashPassword : %v"
	ErrorStartTransaction       = "Transaction creation error: %v"
	ErrorCommitTransaction      = "Transaction commit error: %v"
	ErrorSetSession             = "Set session-cache error: %v"
	ErrorGetSession             = "Get session-cache error: %v"
	ErrorDelSession             = "Del session-cache error: %v"
	ErrorSetDraft               = "Set draft-cache error: %v"
	ErrorGetDraft               = "Get draft-cache error: %v"
	ErrorDelDraft               = "Del draft-cache error: %v"
	ErrorSetListing             = "Set listing-cache error: %v"
	ErrorGetListing             = "Get listing-cache error: %v"
	ErrorDelListing             = "Del listing-cache error: %v"
	ErrorPipeExec               = "Pipe-Exec error: %v"
	ErrorScan                   = "Scan error: %v"
	ErrorUploadPhoto            = "File upload with name = %s error: %v"
	ErrorPublicLink             = "Error getting a public link to file with name = %s: %v"
	ErrorFindPhoto              = "Error when receiving a file with name = %s: %v"
	ErrorDeletePhoto            = "Error file deleted with name = %s: %v"
	ErrorImageDecode            = "Image decode error: %v"
	ErrorImageEncode            = "Image encode error: %v"
	ErrorPublishEvent           = "Publish event error: %v"
)

type CustomError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return e.Message
}
func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType}
}
func ClientError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType}
}
