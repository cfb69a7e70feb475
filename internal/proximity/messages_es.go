package proximity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, "proximity.title", "Cerca de un punto de interés")
	message.SetString(lang, "proximity.subtitle", "Estás cerca de un punto de interés")
	message.SetString(lang, "proximity.body", "Estás cerca de %s")
	message.SetString(lang, "proximity.alert_title", "Cerca de %s")
	message.SetString(lang, "proximity.alert_message", "¡Estás cerca de %s!")
}
