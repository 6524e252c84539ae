package apierrors

const (
	MsgInvalidID          = "invalidId"
	MsgInvalidPayload     = "invalidPayload"
	MsgInternal           = "internalError"
	MsgUnauthorized       = "unauthorized"
	MsgForbidden          = "forbidden"
	MsgBoardNotFound      = "boardNotFound"
	MsgBoardNameRequired  = "boardNameRequired"
	MsgTaskNotFound       = "taskNotFound"
	MsgCommentNotFound    = "commentNotFound"
	MsgCommentRequired    = "commentRequired"
	MsgEmailTaken         = "emailTaken"
	MsgPasswordMismatch   = "passwordMismatch"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInvalidStatus      = "invalidStatus"
	MsgInvalidAssignee    = "invalidAssignee"
	MsgInvalidReviewer    = "invalidReviewer"
	MsgBoardImmutable     = "boardImmutable"
)
