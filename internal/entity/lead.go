package entity

import (
	"context"
	"time"
)

// Step is the dialog position stored per lead.
type Step string

const (
	StepAwaitingLangSelection Step = "awaiting_lang_selection"
	StepAwaitingName          Step = "awaiting_name"
	StepAwaitingPhone         Step = "awaiting_phone"
	StepMainMenu              Step = "main_menu"
)

// Supported dialog languages. Empty string means "not chosen yet".
const (
	LangEnglish = "en"
	LangFarsi   = "fa"
	LangArabic  = "ar"
	LangRussian = "ru"
)

// LeadState is one record per user identity (telegram chat id or web session id).
type LeadState struct {
	Identity     string    `json:"identity"`
	Language     string    `json:"language,omitempty"`
	Name         string    `json:"name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
	Step         Step      `json:"step"`
}

// DefaultLeadState is what an identity that never wrote anything looks like.
// A missing row is not an error, it is this.
func DefaultLeadState(identity string) *LeadState {
	return &LeadState{
		Identity: identity,
		Step:     StepAwaitingLangSelection,
	}
}

type LeadStateRepositoryInterface interface {
	// Load returns the stored record or DefaultLeadState when none exists.
	Load(ctx context.Context, identity string) (*LeadState, error)

	// Save upserts. Empty language/name/phone keep the stored values,
	// step is always overwritten, registeredAt is stamped on first insert only.
	Save(ctx context.Context, identity, language, name, phone string, step Step) error

	// Reset clears language/name/phone and rewinds step to the initial state,
	// creating the record if needed. registeredAt is preserved.
	Reset(ctx context.Context, identity string) error
}
