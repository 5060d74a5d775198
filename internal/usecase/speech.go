package usecase

import "fmt"

const (
	welcomeSpeech   = "Welcome to the Keto Calculator. You can ask a question like, what's the exchange for a Mayonnaise? ... Now, what can I help you with?"
	welcomeReprompt = "For instructions on what you can say, please say help me."

	helpSpeech   = "You can ask questions about keto such as, what's the exchange for a mayonnaise, or, you can say exit... Now, what can I help you with?"
	helpReprompt = "You can say things like, what's the exchange for mayonnaise, or you can say exit... Now, what can I help you with?"

	goodbyeSpeech = "Goodbye"

	unknownExchangeSpeech = "I'm sorry, I currently do not know that exchange. What else can I help with?"
	whatElseReprompt      = "What else can I help with?"

	// UnsupportedSpeech closes the session when no handler exists for an intent.
	UnsupportedSpeech = "I'm sorry, I can't help with that. Goodbye"
)

func cardTitle(itemName string) string {
	return "Exchange for " + itemName
}

func unknownItemSpeech(itemName string) string {
	return fmt.Sprintf("I'm sorry, I currently do not know the exchange for %s. What else can I help with?", itemName)
}
