package genai

import "errors"

var (
	// ErrMissingAPIKey is returned when no API key was configured.
	ErrMissingAPIKey = errors.New("API key is missing")
	// ErrEmptyResponse is returned when the model answered with no content.
	ErrEmptyResponse = errors.New("no response from AI")
	// ErrMalformedResponse is returned when the model's answer is not the expected JSON.
	ErrMalformedResponse = errors.New("AI response was not valid JSON")
)
