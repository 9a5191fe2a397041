package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("certificate request not found")
	ErrVerificationFailed  = errors.New("verification failed, the certificate number or name does not match an approved record")
)
