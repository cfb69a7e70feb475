package proximity

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Notification is the local notification emitted on geofence entry
type Notification struct {
	ID           string    `json:"id"`
	GeofenceID   string    `json:"geofence_id"`
	PlaceID      string    `json:"place_id"`
	PlaceName    string    `json:"place_name"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Body         string    `json:"body"`
	AlertTitle   string    `json:"alert_title"`
	AlertMessage string    `json:"alert_message"`
	Sound        string    `json:"sound"`
	ThreadID     string    `json:"thread_id"`
	CreatedAt    time.Time `json:"created_at"`
}

const notificationSound = "ding"

var supportedLanguages = []language.Tag{language.English, language.Spanish}

var languageMatcher = language.NewMatcher(supportedLanguages)

// Renderer produces localized notification copy
type Renderer struct {
	printer *message.Printer
	tag     language.Tag
}

// NewRenderer returns a renderer for the supported language closest to tag
func NewRenderer(tag language.Tag) *Renderer {
	_, index, _ := languageMatcher.Match(tag)
	matched := supportedLanguages[index]
	return &Renderer{
		printer: message.NewPrinter(matched),
		tag:     matched,
	}
}

// Language returns the language the renderer writes in
func (r *Renderer) Language() language.Tag {
	return r.tag
}

// Render fills in the notification copy for entering g
func (r *Renderer) Render(g Geofence) Notification {
	return Notification{
		GeofenceID:   g.ID,
		PlaceID:      g.PlaceID,
		PlaceName:    g.Name,
		Title:        r.printer.Sprintf("proximity.title"),
		Subtitle:     r.printer.Sprintf("proximity.subtitle"),
		Body:         r.printer.Sprintf("proximity.body", g.Name),
		AlertTitle:   r.printer.Sprintf("proximity.alert_title", g.Name),
		AlertMessage: r.printer.Sprintf("proximity.alert_message", g.Name),
		Sound:        notificationSound,
		ThreadID:     g.Name + "-notification",
	}
}
