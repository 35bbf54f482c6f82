// Package i18n registers user-facing messages with x/text/message and hands
// out printers for the supported languages.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. English text doubles as the key where no plural form is
// involved.
const (
	KeyEmptyQuery   = "Please enter a card name"
	KeyNoCardsFound = "No cards found for %q"
	KeyNoCards      = "No cards available right now"
	KeySearchFailed = "Search failed: %v"
	KeyResultCount  = "result-count"
	KeyNoDecks      = "No deck contains this card"
	KeyDecksFailed  = "Could not load decks"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// Tag resolves a language name such as "fr" or "fr-FR" to a supported tag,
// defaulting to English.
func Tag(lang string) language.Tag {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	switch base.String() {
	case "fr":
		return language.French
	default:
		return language.English
	}
}

// Printer returns a message printer for lang.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang))
}
