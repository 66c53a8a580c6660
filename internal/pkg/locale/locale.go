// Package locale produces the localized strings that the dashboard embeds in
// its view model: fallback labels, alert messages and short date labels.
package locale

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyNotAvailable = "N/A"
	keyLateArrival  = "%s checked in late at %s"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

var shortMonths = map[language.Tag][12]string{
	language.English:    {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	language.Indonesian: {"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
}

func init() {
	message.SetString(language.Indonesian, keyNotAvailable, "Tidak tersedia")
	message.SetString(language.Indonesian, keyLateArrival, "%s terlambat masuk pukul %s")
}

// Labels renders strings for one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns Labels for the best supported match of lang (a BCP 47 tag or an
// Accept-Language value). Unknown or empty input falls back to English.
func New(lang string) *Labels {
	tag := supported[0]
	if lang != "" {
		desired, _, err := language.ParseAcceptLanguage(lang)
		if err == nil && len(desired) > 0 {
			_, idx, conf := matcher.Match(desired...)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Labels{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the resolved language.
func (l *Labels) Tag() language.Tag {
	return l.tag
}

// NotAvailable is the placeholder shown when a name cannot be resolved.
func (l *Labels) NotAvailable() string {
	return l.printer.Sprintf(keyNotAvailable)
}

// LateArrival composes the late check-in alert message.
func (l *Labels) LateArrival(name, checkIn string) string {
	return l.printer.Sprintf(keyLateArrival, name, checkIn)
}

// ShortDate formats d as a short day-and-month label ("Oct 16" or "16 Okt").
func (l *Labels) ShortDate(d calendar.Date) string {
	if d.IsZero() {
		return ""
	}
	month := shortMonths[l.tag][d.Month-time.January]
	if l.tag == language.English {
		return fmt.Sprintf("%s %d", month, d.Day)
	}
	return fmt.Sprintf("%d %s", d.Day, month)
}
