package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("query not found with the provided ID")
	ErrReplyFailed     = errors.New("failed to send the reply email")
)
