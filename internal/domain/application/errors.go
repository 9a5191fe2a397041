package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found with the provided ID")
	ErrResumeRequired      = errors.New("resume is a required field, please upload your resume")
)
