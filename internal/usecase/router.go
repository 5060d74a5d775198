package usecase

import (
	"context"
	"errors"
	"log/slog"

	"keto-calculator/internal/domain"
	"keto-calculator/internal/exchange"
)

// Intent names recognized by the skill.
const (
	IntentLookup = "LookupIntent"
	IntentStop   = "AMAZON.StopIntent"
	IntentCancel = "AMAZON.CancelIntent"
	IntentHelp   = "AMAZON.HelpIntent"

	SlotItem = "Item"
)

type EventKind int

const (
	EventLaunch EventKind = iota
	EventIntent
)

func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventIntent:
		return "intent"
	default:
		return "unknown"
	}
}

// Event is a single inbound request, stripped of the platform envelope.
// Slots holds only slots that carried a non-empty value.
type Event struct {
	Kind       EventKind
	IntentName string
	Slots      map[string]string
	SessionID  string
}

type ExchangeResolver interface {
	Resolve(name *string) exchange.Result
}

type IntentHandler func(ctx context.Context, ev Event) domain.SpeechResponse

// Router dispatches events to intent handlers. The handler map is built once in
// NewRouter and never written afterwards.
type Router struct {
	resolver ExchangeResolver
	handlers map[string]IntentHandler
}

func NewRouter(resolver ExchangeResolver) (*Router, error) {
	if resolver == nil {
		return nil, errors.New("usecase: resolver must not be nil")
	}
	r := &Router{resolver: resolver}
	r.handlers = map[string]IntentHandler{
		IntentLookup: r.lookup,
		IntentStop:   goodbye,
		IntentCancel: goodbye,
		IntentHelp:   help,
	}
	return r, nil
}

func (r *Router) Route(ctx context.Context, ev Event) (domain.SpeechResponse, error) {
	if ev.Kind == EventLaunch {
		return welcome(ctx, ev), nil
	}
	h, ok := r.handlers[ev.IntentName]
	if !ok {
		slog.WarnContext(ctx, "unsupported intent", "intent", ev.IntentName, "session", ev.SessionID)
		return domain.SpeechResponse{}, NewError(ErrorUnsupportedIntent, ev.IntentName, nil)
	}
	return h(ctx, ev), nil
}

// Supports reports whether an intent name has a registered handler.
func (r *Router) Supports(intentName string) bool {
	_, ok := r.handlers[intentName]
	return ok
}

func (r *Router) lookup(ctx context.Context, ev Event) domain.SpeechResponse {
	var itemName *string
	if v, ok := ev.Slots[SlotItem]; ok && v != "" {
		n := exchange.Normalize(v)
		itemName = &n
	}

	res := r.resolver.Resolve(itemName)
	if res.Found && itemName != nil {
		slog.DebugContext(ctx, "exchange found", "item", *itemName, "key", res.Key)
		return domain.TellWithCard(res.Exchange, cardTitle(*itemName), res.Exchange)
	}

	if itemName == nil {
		return domain.Ask(unknownExchangeSpeech, whatElseReprompt)
	}
	slog.InfoContext(ctx, "exchange not found", "item", *itemName)
	return domain.Ask(unknownItemSpeech(*itemName), whatElseReprompt)
}

func welcome(_ context.Context, _ Event) domain.SpeechResponse {
	return domain.Ask(welcomeSpeech, welcomeReprompt)
}

func help(_ context.Context, _ Event) domain.SpeechResponse {
	return domain.Ask(helpSpeech, helpReprompt)
}

func goodbye(_ context.Context, _ Event) domain.SpeechResponse {
	return domain.Tell(goodbyeSpeech)
}
