package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ResponseType clasifica la urgencia del mensaje para elegir respuestas de respaldo.
type ResponseType string

const (
	ResponseTypeCrisis     ResponseType = "crisis"
	ResponseTypePanic      ResponseType = "panic"
	ResponseTypeEscalation ResponseType = "escalation"
	ResponseTypeStandard   ResponseType = "standard"
)

// BoundaryReply se devuelve ante contenido abusivo o sexual, sin pasar por el corpus.
const BoundaryReply = "I'm here to support your wellbeing. I can't engage with abusive or sexual content. If you're comfortable, tell me a bit about how you're feeling right now or what's been on your mind so I can support you safely."

// "die" no está en la lista: "I want to die" tiene que llegar al manejo de crisis.
var abuseTerms = []string{
	"abuse", "abusive", "kill you", "kill u", "kys", "fuck", "f***", "fuk", "shit", "bitch",
	"bastard", "asshole", "slut", "whore", "rape", "racist", "cunt", "dick", "cock", "pussy",
	"retard", "retarded", "idiot", "moron", "fag", "faggot",
}

var sexualTerms = []string{"nude", "nudes", "send pics", "porn", "sexual favor", "sex with you", "sext", "nsfw"}

var (
	crisisTerms = []string{
		"feeling hopeless", "no way out", "can't go on", "everything is pointless",
		"want it to end", "tired of living", "hurt myself", "dangerous thoughts",
		"kill myself", "suicide", "suicidal", "want to die", "end my life",
	}
	panicTerms = []string{
		"panic attack", "can't breathe", "heart racing", "chest pain", "dizzy",
		"losing control", "going crazy", "hyperventilating",
	}
	escalationTerms = []string{"angry", "furious", "rage", "explosive", "outburst", "breakdown", "meltdown"}
)

// normalize baja a minúsculas, elimina diacríticos y unifica apóstrofes tipográficos.
func normalize(s string) string {
	s = norm.NFD.String(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r == '’' || r == '‘' {
			r = '\''
		}
		b.WriteRune(r)
	}
	return b.String()
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

// containsWord busca frases completas: "class" no dispara "ass", "skill you" no dispara "kill you".
func containsWord(s string, list []string) bool {
	padded := " " + strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '*' || r == '\'' {
			return r
		}
		return ' '
	}, s) + " "
	padded = strings.Join(strings.Fields(padded), " ")
	padded = " " + padded + " "
	for _, x := range list {
		if strings.Contains(padded, " "+x+" ") {
			return true
		}
	}
	return false
}

// IsBoundaryViolation detecta contenido abusivo o sexual explícito.
func IsBoundaryViolation(message string) bool {
	msg := normalize(message)
	return containsWord(msg, abuseTerms) || containsWord(msg, sexualTerms)
}

// DetectResponseType aplica prioridad crisis > pánico > escalada.
func DetectResponseType(message string) ResponseType {
	msg := normalize(message)
	switch {
	case containsAny(msg, crisisTerms):
		return ResponseTypeCrisis
	case containsAny(msg, panicTerms):
		return ResponseTypePanic
	case containsAny(msg, escalationTerms):
		return ResponseTypeEscalation
	default:
		return ResponseTypeStandard
	}
}
