package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"keto-calculator/internal/domain"
	"keto-calculator/internal/usecase"
)

type EventRouter interface {
	Route(ctx context.Context, ev usecase.Event) (domain.SpeechResponse, error)
}

// Handler is the Lambda entrypoint. It verifies the target application,
// converts the platform envelope into a usecase.Event and renders the
// router's answer back into a response envelope.
type Handler struct {
	router EventRouter
	appID  string
}

func NewHandler(router EventRouter, appID string) (*Handler, error) {
	if router == nil {
		return nil, errors.New("handler: router must not be nil")
	}
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return nil, errors.New("handler: application id must not be empty")
	}
	return &Handler{router: router, appID: appID}, nil
}

func (h *Handler) Handle(ctx context.Context, req domain.RequestEnvelope) (domain.ResponseEnvelope, error) {
	requestID := strings.TrimSpace(req.Request.RequestID)
	if requestID == "" {
		requestID = newUUID()
	}
	log := slog.With("requestId", requestID, "type", req.Request.Type)

	if got := req.ApplicationID(); got != h.appID {
		log.WarnContext(ctx, "rejected request for foreign application", "applicationId", got)
		return domain.ResponseEnvelope{}, usecase.NewError(usecase.ErrorInvalidApplication, "application_id_mismatch", nil)
	}

	var ev usecase.Event
	switch req.Request.Type {
	case domain.RequestTypeLaunch:
		ev = usecase.Event{Kind: usecase.EventLaunch}
	case domain.RequestTypeIntent:
		ev = intentEvent(req.Request.Intent)
	case domain.RequestTypeSessionEnded:
		log.InfoContext(ctx, "session ended", "reason", req.Request.Reason)
		return render(req, domain.SpeechResponse{ShouldEndSession: true}), nil
	default:
		log.WarnContext(ctx, "unknown request type")
		return domain.ResponseEnvelope{}, usecase.NewError(usecase.ErrorInvalidRequest, "unknown_request_type", nil)
	}
	if req.Session != nil {
		ev.SessionID = req.Session.SessionID
	}

	out, err := h.router.Route(ctx, ev)
	if err != nil {
		if !usecase.IsUnsupportedIntent(err) {
			log.ErrorContext(ctx, "route failed", "err", err)
			return domain.ResponseEnvelope{}, err
		}
		out = domain.Tell(usecase.UnsupportedSpeech)
	}

	log.InfoContext(ctx, "handled request", "kind", ev.Kind, "intent", ev.IntentName, "endSession", out.ShouldEndSession)
	return render(req, out), nil
}

// intentEvent keeps only slots carrying a value; a missing intent block becomes
// an intent with an empty name, which the router rejects as unsupported.
func intentEvent(in *domain.Intent) usecase.Event {
	ev := usecase.Event{Kind: usecase.EventIntent}
	if in == nil {
		return ev
	}
	ev.IntentName = in.Name
	for name, slot := range in.Slots {
		if slot == nil || slot.Value == "" {
			continue
		}
		if ev.Slots == nil {
			ev.Slots = make(map[string]string, len(in.Slots))
		}
		ev.Slots[name] = slot.Value
	}
	return ev
}

func render(req domain.RequestEnvelope, out domain.SpeechResponse) domain.ResponseEnvelope {
	env := domain.ResponseEnvelope{
		Version: domain.EnvelopeVersion,
		Response: domain.ResponseBody{
			ShouldEndSession: out.ShouldEndSession,
		},
	}
	if req.Session != nil {
		env.SessionAttributes = req.Session.Attributes
	}
	if out.Speech != "" {
		env.Response.OutputSpeech = &domain.OutputSpeech{Type: domain.SpeechTypePlainText, Text: out.Speech}
	}
	if out.Reprompt != "" {
		env.Response.Reprompt = &domain.Reprompt{
			OutputSpeech: domain.OutputSpeech{Type: domain.SpeechTypePlainText, Text: out.Reprompt},
		}
	}
	if out.Card != nil {
		env.Response.Card = &domain.CardPayload{Type: domain.CardTypeSimple, Title: out.Card.Title, Content: out.Card.Content}
	}
	return env
}

var newUUID = func() string {
	return uuid.NewString()
}
