package proximity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "proximity.title", "Close to a point of interest")
	message.SetString(lang, "proximity.subtitle", "You are near a point of interest")
	message.SetString(lang, "proximity.body", "You are near %s")
	message.SetString(lang, "proximity.alert_title", "Close to %s")
	message.SetString(lang, "proximity.alert_message", "You are near %s!")
}
