package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.Set(lang, KeyResultCount, plural.Selectf(1, "%d",
		"=1", "%d card found",
		"other", "%d cards found",
	))
}
