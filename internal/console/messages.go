package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English text.
const (
	msgWelcome    = "You are in room %s"
	msgChoose     = "Choose an option:"
	msgPicked     = "You picked up the item %s."
	msgInventory  = "Your items: %s"
	msgStay       = "You stay in room %s"
	msgTransition = "You move from %s to %s"
	msgNotANumber = "That was not a number! Please enter the number of an option."
	msgOutOfRange = "That number does not belong to any option! Choose a number from 0 to %d."
	msgBack       = "Go back to the previous room"
	msgQuit       = "Quit"
	msgMenuHint   = "↑/↓ select, enter confirm, esc abort"
)

var german = map[string]string{
	msgWelcome:    "Du bist in Raum %s",
	msgChoose:     "Wähle eine Option:",
	msgPicked:     "Du hast das Item %s aufgenommen.",
	msgInventory:  "Deine aufgesammelten Items sind: %s",
	msgStay:       "Du bleibst in Raum %s",
	msgTransition: "Du wechselst vom %s in %s",
	msgNotANumber: "Die Eingabe wurde nicht als Zahl erkannt! Bitte gib die Nummer der Option ein!",
	msgOutOfRange: "Die eingegebene Zahl gehört zu keiner Option! Wähle eine Zahl von 0 bis %d.",
	msgBack:       "Gehe zurück zum vorherigen Raum",
	msgQuit:       "Beenden",
	msgMenuHint:   "↑/↓ auswählen, Enter bestätigen, Esc abbrechen",
}

func init() {
	for key, text := range german {
		if err := message.SetString(language.German, key, text); err != nil {
			panic(err)
		}
	}
}

func tagFor(lang string) language.Tag {
	if lang == "en" {
		return language.English
	}
	return language.German
}

// Labels are the localized texts other front ends need.
type Labels struct {
	Back   string
	Quit   string
	Choose string
	Hint   string
}
