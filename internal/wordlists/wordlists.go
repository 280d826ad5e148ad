// Package wordlists provides small, literal default rank lists for the
// dictionary matcher's default factory.
//
// Loading the full embedded wordlists (passwords, English, names,
// surnames) from an external resource bundle is explicitly out of scope
// for the core — that is an external collaborator's job. What lives here
// is a minimal, illustrative default so the root package's DefaultFactory
// and one-shot API work out of the box without requiring a
// caller to supply their own lists, mirroring the teacher's embedded
// literal Go-slice wordlists (internal/dictionary/passwords.go,
// internal/dictionary/words.go) rather than any file-loading mechanism.
//
// Entries are ordered most-common-first: order is rank.
package wordlists

// Passwords is a small rank-ordered list of extremely common passwords.
var Passwords = []string{
	"password", "123456", "12345678", "qwerty", "123456789",
	"12345", "1234", "111111", "1234567", "dragon",
	"baseball", "abc123", "football", "monkey", "letmein",
	"shadow", "master", "666666", "qwertyuiop", "123321",
	"mustang", "1234567890", "michael", "654321", "superman",
	"1qaz2wsx", "121212", "000000", "qazwsx", "trustno1",
	"jordan", "jennifer", "zxcvbnm", "asdfgh", "hunter",
	"soccer", "harley", "batman", "andrew", "tigger",
	"sunshine", "iloveyou", "charlie", "robert", "thomas",
	"hockey", "ranger", "daniel", "starwars", "klaster",
	"computer", "michelle", "jessica", "pepper", "zxcvbn",
	"555555", "freedom", "777777", "pass", "maggie",
	"aaaaaa", "ginger", "princess", "joshua", "cheese",
	"amanda", "summer", "love", "ashley", "nicole",
	"chelsea", "matthew", "access", "yankees", "dallas",
	"austin", "thunder", "taylor", "matrix", "minecraft",
	"william", "admin", "welcome", "login", "abc123456",
	"p@ssw0rd", "passw0rd", "changeme", "whatever", "trustno1",
}

// English is a small rank-ordered list of common English words used for
// substring word-containment checks.
var English = []string{
	"the", "love", "time", "life", "world", "home", "family",
	"music", "happy", "friend", "summer", "winter", "spring",
	"autumn", "water", "fire", "earth", "wind", "light", "dark",
	"dream", "hope", "faith", "peace", "freedom", "power",
	"money", "work", "school", "book", "story", "game", "play",
	"dance", "sing", "smile", "laugh", "heart", "soul", "mind",
	"ocean", "mountain", "river", "forest", "garden", "flower",
	"sunshine", "rainbow", "thunder", "shadow", "secret", "magic",
	"dragon", "tiger", "eagle", "wolf", "lion", "bear", "horse",
	"computer", "internet", "phone", "coffee", "chocolate", "pizza",
}

// MaleNames is a small rank-ordered list of common male first names.
var MaleNames = []string{
	"james", "robert", "john", "michael", "david", "william",
	"richard", "joseph", "thomas", "charles", "daniel", "matthew",
	"anthony", "donald", "andrew", "joshua", "kevin", "brian",
	"george", "edward", "ronald", "steven", "jason", "jeffrey",
	"ryan", "jacob", "gary", "nicholas", "eric", "stephen",
}

// FemaleNames is a small rank-ordered list of common female first names.
var FemaleNames = []string{
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara",
	"susan", "jessica", "sarah", "karen", "nancy", "lisa",
	"margaret", "betty", "sandra", "ashley", "dorothy", "kimberly",
	"emily", "donna", "michelle", "carol", "amanda", "melissa",
	"deborah", "stephanie", "rebecca", "laura", "helen", "sharon",
}

// Surnames is a small rank-ordered list of common surnames.
var Surnames = []string{
	"smith", "johnson", "williams", "brown", "jones", "garcia",
	"miller", "davis", "rodriguez", "martinez", "hernandez", "lopez",
	"gonzalez", "wilson", "anderson", "thomas", "taylor", "moore",
	"jackson", "martin", "lee", "perez", "thompson", "white",
	"harris", "sanchez", "clark", "ramirez", "lewis", "robinson",
}
