package extractor

// Word lists used to keep ordinary words out of person-name candidates.
// A token appearing in any of these lists is never a name on its own.

var temporalWords = map[string]bool{
	"next": true, "last": true, "this": true, "tomorrow": true, "today": true,
	"yesterday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"week": true, "month": true, "year": true, "am": true, "pm": true,
	"morning": true, "afternoon": true, "evening": true, "night": true,
	"noon": true, "anytime": true, "weekly": true, "daily": true,
	"monthly": true, "every": true,
}

var stopWords = map[string]bool{
	"with": true, "for": true, "at": true, "on": true, "in": true,
	"the": true, "and": true, "or": true, "but": true, "because": true,
	"as": true, "hi": true, "hello": true, "hey": true, "can": true,
	"could": true, "would": true, "will": true, "shall": true, "must": true,
	"should": true, "might": true, "do": true, "does": true, "did": true,
	"has": true, "have": true, "had": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"you": true, "your": true, "me": true, "my": true, "i": true,
	"we": true, "us": true, "please": true, "thanks": true, "thank": true,
	"want": true, "need": true, "like": true, "help": true, "an": true,
	"a": true, "to": true, "from": true, "by": true, "of": true,
	"it": true, "its": true, "they": true, "their": true, "them": true,
	"there": true, "here": true, "where": true, "when": true, "how": true,
	"what": true, "who": true, "why": true, "which": true, "that": true,
	"yes": true, "no": true, "ok": true, "okay": true, "sure": true,
	"correct": true, "right": true, "maybe": true, "not": true,
	"something": true, "anything": true, "someone": true, "anyone": true,
	"everyone": true, "whenever": true, "whatever": true,
	"one": true, "two": true, "three": true, "four": true, "five": true,
	"six": true, "seven": true, "eight": true, "nine": true, "ten": true,
}

var domainWords = map[string]bool{
	"appointment": true, "appointments": true, "schedule": true, "book": true,
	"make": true, "set": true, "get": true, "find": true, "check": true,
	"show": true, "list": true, "cancel": true, "reschedule": true,
	"time": true, "date": true, "meeting": true, "consultation": true,
	"session": true, "visit": true, "call": true, "talk": true,
	"availability": true, "availibility": true, "available": true,
	"free": true, "busy": true, "slot": true, "opening": true,
	"mode": true, "switch": true, "another": true, "new": true, "reset": true,
}

// Honorific titles allowed in front of a name.
var titles = map[string]bool{
	"dr": true, "mr": true, "mrs": true, "ms": true, "miss": true, "prof": true,
}
