package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrFileNotFound    = errors.New("file not found")
	ErrHistoryNotFound = errors.New("post history not found")

	ErrParse         = errors.New("parse failed")
	ErrEmptyInput    = errors.New("empty input")
	ErrConnection    = errors.New("connection failed")
	ErrConfiguration = errors.New("configuration error")
	ErrPosting       = errors.New("posting failed")
)

type ParseError struct {
	Parser string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Parser, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

type ConnectionError struct {
	AccountID AccountID
	Reason    string
}

func (e *ConnectionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("connect account %s: %s", e.AccountID, ErrConnection)
	}
	return fmt.Sprintf("connect account %s: %s", e.AccountID, e.Reason)
}

func (e *ConnectionError) Unwrap() error { return ErrConnection }

type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfiguration, e.Err}
	}
	return []error{ErrConfiguration}
}

type PostingErrorKind string

const (
	PostingDuplicate   PostingErrorKind = "duplicate"
	PostingRateLimited PostingErrorKind = "rate_limited"
	PostingTooLong     PostingErrorKind = "too_long"
	PostingRejected    PostingErrorKind = "rejected"
)

type PostingError struct {
	AccountID AccountID
	Kind      PostingErrorKind
	Err       error
}

func (e *PostingError) Error() string {
	return fmt.Sprintf("post to account %s (%s): %v", e.AccountID, e.Kind, e.Err)
}

func (e *PostingError) Unwrap() []error {
	return []error{ErrPosting, e.Err}
}

// UploadWarning records a media reference that was dropped from a post.
// It is reported, never returned as an error.
type UploadWarning struct {
	Reference string
	Reason    string
}

func (w UploadWarning) String() string {
	return fmt.Sprintf("media %s skipped: %s", w.Reference, w.Reason)
}
