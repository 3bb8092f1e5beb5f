// Package domain contains the error kinds shared across the article
// pipeline. Keep this package free of transport (HTTP) and
// infrastructure (SMTP/LLM) concerns.
package domain

import "errors"

// ErrMissingCredentials signals that the mail relay credentials are not
// configured. This is checked before any pipeline work begins.
var ErrMissingCredentials = errors.New("email credentials not configured")

// ValidationError describes a rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// FetchError wraps a failure to retrieve the article page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return "fetch " + e.URL + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// SummarizeError wraps a failure from the generative-text service.
type SummarizeError struct {
	Err error
}

func (e *SummarizeError) Error() string {
	return "summarize article: " + e.Err.Error()
}

func (e *SummarizeError) Unwrap() error { return e.Err }

// RenderError wraps a failure to produce the PDF document.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "render document: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }

// DeliveryError wraps a failure to hand the email to the mail relay.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "deliver email: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }
