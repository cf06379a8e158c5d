package model

import "uwt/onboarding"

// PINRequest represents request for POST /onboarding/pin
type PINRequest struct {
	PIN       string `json:"pin" validate:"required,len=6,numeric"`
	Biometric bool   `json:"biometric"`
}

// RevealRequest represents request for POST /onboarding/reveal
type RevealRequest struct {
	Index int `json:"index" validate:"gte=0,lt=12"`
}

// Answer is one chosen word for a challenged position.
type Answer struct {
	Index int    `json:"index"`
	Word  string `json:"word" validate:"required"`
}

// ConfirmRequest represents request for POST /onboarding/confirm
type ConfirmRequest struct {
	Answers []Answer `json:"answers" validate:"required,dive"`
}

// ImportRequest represents request for POST /onboarding/import
type ImportRequest struct {
	Phrase string `json:"phrase"`
}

// OnboardingStatusResponse represents response for GET /onboarding/status
type OnboardingStatusResponse struct {
	State    onboarding.State `json:"state"`
	Revealed []bool           `json:"revealed,omitempty"`
}

// SeedResponse represents response for GET /onboarding/seed. Shown only during
// the reveal step; never persisted.
type SeedResponse struct {
	Words    []string `json:"words"`
	Revealed []bool   `json:"revealed"`
}

// ChallengeResponse represents response for GET /onboarding/challenge
type ChallengeResponse struct {
	Items []onboarding.ChallengeItem `json:"items"`
}

// StepResponse acknowledges a state transition.
type StepResponse struct {
	Success bool             `json:"success"`
	State   onboarding.State `json:"state"`
	Message string           `json:"message,omitempty"`
}
