package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mehrsalabs/leadbot/internal/entity"
	"github.com/mehrsalabs/leadbot/internal/infra/queue"
)

// Restart commands win over any state. Matched exactly, not by substring.
var restartTokens = []string{"/start", "start", "شروع", "Start"}

type menuBranch struct {
	key    string
	tokens []string
}

// Keyword matching is raw substring containment, OR across the language
// variants of each label. Order is the resolution priority: an input that
// mentions several options gets the first branch that matches.
var menuBranches = []menuBranch{
	{key: "menu_luxury", tokens: []string{"Luxury", "لوکس", "الفاخرة", "Люксовый"}},
	{key: "menu_investment", tokens: []string{"Investment", "سرمایه‌گذاری", "الاستثمار", "Инвестиции"}},
	{key: "menu_about", tokens: []string{"About", "درباره", "عن", "О Mehrsa"}},
	{key: "menu_booking", tokens: []string{"Book", "رزرو", "حجز", "Забронировать", "Calendly"}},
	{key: "menu_contact", tokens: []string{"Contact", "ارتباط", "اتصل", "Контакты"}},
}

// ProcessMessageUseCase is the dialog state machine. It loads the lead's
// current step, applies one transition and replies through the responder
// exactly once. Queue is optional; when wired, completed registrations are
// published for the notification worker.
type ProcessMessageUseCase struct {
	Repo  entity.LeadStateRepositoryInterface
	Queue QueueProducerInterface
	Links Links
}

func NewProcessMessageUseCase(
	repo entity.LeadStateRepositoryInterface,
	producer QueueProducerInterface,
	links Links,
) *ProcessMessageUseCase {
	return &ProcessMessageUseCase{
		Repo:  repo,
		Queue: producer,
		Links: links,
	}
}

func (uc *ProcessMessageUseCase) Execute(ctx context.Context, input ProcessMessageInput, respond Responder) error {
	state, err := uc.Repo.Load(ctx, input.Identity)
	if err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: "load lead state: " + err.Error()}
	}

	// Restart is checked before any state logic.
	if isRestart(input.Text) {
		if err := uc.Repo.Reset(ctx, input.Identity); err != nil {
			return &TechnicalError{Code: "STORE_ERROR", Message: "reset lead state: " + err.Error()}
		}
		return respond(welcomeMessage(), languageSelector())
	}

	switch state.Step {
	case entity.StepAwaitingLangSelection:
		return uc.handleLanguageSelection(ctx, input, respond)
	case entity.StepAwaitingName:
		return uc.handleName(ctx, input, state, respond)
	case entity.StepAwaitingPhone:
		return uc.handlePhone(ctx, input, state, respond)
	case entity.StepMainMenu:
		return uc.handleMainMenu(input, state, respond)
	default:
		// Corrupted/unknown step: degrade to the restart hint instead of failing.
		return respond(message("restart_hint", state.Language), nil)
	}
}

func isRestart(text string) bool {
	for _, token := range restartTokens {
		if text == token {
			return true
		}
	}
	return false
}

func detectLanguage(text string) string {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "EN"):
		return entity.LangEnglish
	case strings.Contains(upper, "FA") || strings.Contains(text, "فارسی"):
		return entity.LangFarsi
	case strings.Contains(upper, "AR") || strings.Contains(text, "العربية"):
		return entity.LangArabic
	case strings.Contains(upper, "RU") || strings.Contains(upper, "РУССКИЙ"):
		return entity.LangRussian
	}
	return ""
}

func (uc *ProcessMessageUseCase) handleLanguageSelection(ctx context.Context, input ProcessMessageInput, respond Responder) error {
	language := detectLanguage(input.Text)
	if language == "" {
		return respond(message("select_language", ""), []string{"English (EN)", "فارسی (FA)"})
	}

	if err := uc.Repo.Save(ctx, input.Identity, language, "", "", entity.StepAwaitingName); err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: "save language: " + err.Error()}
	}
	return respond(message("ask_name", language), nil)
}

func (uc *ProcessMessageUseCase) handleName(ctx context.Context, input ProcessMessageInput, state *entity.LeadState, respond Responder) error {
	// No validation on purpose: whatever the user sends is the name.
	if err := uc.Repo.Save(ctx, input.Identity, "", input.Text, "", entity.StepAwaitingPhone); err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: "save name: " + err.Error()}
	}
	prompt := fmt.Sprintf(message("ask_phone", state.Language), input.Text)
	return respond(prompt, nil)
}

func (uc *ProcessMessageUseCase) handlePhone(ctx context.Context, input ProcessMessageInput, state *entity.LeadState, respond Responder) error {
	if err := uc.Repo.Save(ctx, input.Identity, "", "", input.Text, entity.StepMainMenu); err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: "save phone: " + err.Error()}
	}

	// Registration is complete here. The notification is fire-and-forget:
	// a queue failure must not break the dialog.
	if uc.Queue != nil {
		payload := queue.LeadRegisteredPayload{
			Identity:     input.Identity,
			Channel:      input.Channel,
			Language:     state.Language,
			Name:         state.Name,
			Phone:        input.Text,
			RegisteredAt: state.RegisteredAt,
		}
		if err := uc.Queue.PublishLeadRegistered(ctx, payload); err != nil {
			log.Printf("⚠️ lead-registered publish failed for %s: %v", input.Identity, err)
		}
	}

	return respond(message("registration_complete", state.Language), entity.MainMenuOptions(state.Language))
}

func (uc *ProcessMessageUseCase) handleMainMenu(input ProcessMessageInput, state *entity.LeadState, respond Responder) error {
	for _, branch := range menuBranches {
		for _, token := range branch.tokens {
			if strings.Contains(input.Text, token) {
				return respond(uc.menuReply(branch.key, state.Language), entity.MainMenuOptions(state.Language))
			}
		}
	}
	return respond(message("menu_fallback", state.Language), entity.MainMenuOptions(state.Language))
}

func (uc *ProcessMessageUseCase) menuReply(key, language string) string {
	switch key {
	case "menu_about":
		return aboutMessage(language, uc.Links)
	case "menu_booking":
		return fmt.Sprintf(message(key, language), uc.Links.Booking)
	default:
		return message(key, language)
	}
}
