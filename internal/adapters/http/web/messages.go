package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. English keys double as the English text.
const (
	msgRange        = "%s to %s"
	msgPercent      = "%d%% of the semester has passed."
	msgUpcoming     = "The semester starts in %d days."
	msgInProgress   = "%d days remaining."
	msgFinished     = "The semester is over."
	msgNotFound     = "This semester does not exist."
	msgBadRequest   = "The requested date is not valid."
	msgUnavailable  = "The semester calendar is currently unavailable."
	msgInternal     = "Something went wrong."
	msgErrorHeading = "Error %d"
)

// Supported page languages. The first entry is the matcher's default.
var supported = []language.Tag{language.English, language.German}

// dateLayouts are the per-language date formats used on the page.
var dateLayouts = map[language.Tag]string{
	language.English: "January 2, 2006",
	language.German:  "2.1.2006",
}

var germanMessages = map[string]string{
	msgRange:        "%s bis %s",
	msgPercent:      "%d%% des Semesters sind vorbei.",
	msgUpcoming:     "Das Semester beginnt in %d Tagen.",
	msgInProgress:   "Noch %d Tage.",
	msgFinished:     "Das Semester ist vorbei.",
	msgNotFound:     "Dieses Semester gibt es nicht.",
	msgBadRequest:   "Das angefragte Datum ist ungültig.",
	msgUnavailable:  "Der Semesterkalender ist zurzeit nicht erreichbar.",
	msgInternal:     "Etwas ist schiefgelaufen.",
	msgErrorHeading: "Fehler %d",
}

func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range germanMessages {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
		if err := b.SetString(language.German, key, msg); err != nil {
			return nil, err
		}
	}
	return b, nil
}
