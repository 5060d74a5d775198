package domain

// Card is the display card attached to a spoken response.
type Card struct {
	Title   string
	Content string
}

// SpeechResponse is what an intent handler produces: either a final "tell"
// that closes the session or an "ask" that keeps it open for a reply.
type SpeechResponse struct {
	Speech           string
	Reprompt         string
	Card             *Card
	ShouldEndSession bool
}

// Tell builds a response that ends the session.
func Tell(speech string) SpeechResponse {
	return SpeechResponse{Speech: speech, ShouldEndSession: true}
}

// TellWithCard builds a session-ending response that also shows a card.
func TellWithCard(speech, title, content string) SpeechResponse {
	return SpeechResponse{
		Speech:           speech,
		Card:             &Card{Title: title, Content: content},
		ShouldEndSession: true,
	}
}

// Ask builds a response that keeps the session open and reprompts on silence.
func Ask(speech, reprompt string) SpeechResponse {
	return SpeechResponse{Speech: speech, Reprompt: reprompt}
}
