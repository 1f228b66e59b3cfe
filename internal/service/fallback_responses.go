package service

import "mindcare/internal/domain"

var toneIntros = map[domain.Tone][]string{
	domain.ToneEmpatheticSupportive: {
		"I'm really hearing the weight of what you're going through.",
		"Thank you for sharing this with me. What you're carrying sounds heavy.",
	},
	domain.ToneUnderstandingPractical: {
		"That sounds like a lot to manage. Let's make this a bit more workable.",
		"This is tough, and we can break it into steps together.",
	},
	domain.ToneCrisisSupport: {
		"I'm here with you now, and your safety matters most.",
		"I hear the urgency in what you're saying, and we'll take this moment by moment.",
	},
}

var defaultIntros = []string{
	"I can feel how important this is for you.",
	"You're not alone in this; I'm here with you.",
}

var synthesisClosers = []string{
	"What feels like the smallest next step you could take right now?",
	"As you sit with this, what's one thing your body needs in this moment: water, breathing, a short pause?",
	"Would you like to explore one or two concrete steps together?",
}

var varietyClosers = []string{
	"As we sit with this, what's one small shift that might feel possible this week?",
	"Would it help if we mapped this into one practical step for today?",
	"If you had support from someone you trust, what would you ask them for right now?",
	"What's one sign you might notice when things feel even a little bit lighter?",
}

const crisisResources = "If you are in immediate danger, please call your local emergency number now. You can also reach a crisis line (for example 988 in the US, or your country's suicide prevention line) or a person you trust who can stay with you."

// Categorías del respaldo por palabras clave, en orden de prioridad.
const (
	fallbackCrisis     = "crisis"
	fallbackPanic      = "panic"
	fallbackEscalation = "escalation"
	fallbackStress     = "stress"
	fallbackAnxiety    = "anxiety"
	fallbackSadness    = "sadness"
	fallbackAnger      = "anger"
	fallbackHelp       = "help"
	fallbackGeneric    = "generic"
)

var fallbackResponses = map[string][]string{
	fallbackCrisis: {
		"I'm concerned about what you're sharing. Your feelings are valid, and support is available to help you through this.\n\n" + crisisResources + "\n\nI'm here with you right now. Can you tell me about the people around you who could support you?",
		"What you're experiencing sounds incredibly overwhelming, and reaching out shows real strength.\n\n" + crisisResources + "\n\nAre you somewhere safe right now? Who in your life could you reach out to today?",
	},
	fallbackPanic: {
		"I can hear that you're in real distress right now, and you are going to get through this. Put your feet flat on the floor and breathe with me: in for 4, hold for 7, out for 8. You're safe. This feeling will pass. What's one thing you can see around you right now?",
		"That racing, overwhelming feeling is frightening, but your body is trying to protect you and you are safe. Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell and 1 you can taste. I'm right here with you.",
	},
	fallbackEscalation: {
		"I can feel the intensity of what you're experiencing, and these big emotions make sense. Let's bring your nervous system back to calmer waters: feet on the ground, three slow breaths with me. What's the strongest emotion you're feeling right now?",
		"When emotions feel this big, they can knock us over like a wave. Notice your feet on the floor and your breathing. These feelings are temporary, even when they feel endless. What usually helps you feel more in control?",
	},
	fallbackStress: {
		"I can feel the weight of the pressure you're carrying. When stress builds up like this, our nervous system gets stuck in overdrive. What's the one thing that feels most urgent to you? Focusing on the next small step can help us find our footing.",
		"The juggling act you're describing sounds exhausting. Which of these demands takes up the most emotional space for you right now? Sometimes naming the biggest weight shows us where to start.",
	},
	fallbackAnxiety: {
		"That spiraling feeling of 'what if' sounds exhausting. Which worry is taking up the most space right now? Naming the biggest fear can take away a little of its power. Could we focus on just this moment, this breath, together?",
		"Anxiety gets louder when the future feels uncertain. Behind the worry there is usually something important to you. What's one thing you know for sure about your situation right now?",
	},
	fallbackSadness: {
		"I can feel the depth of the sadness you're sharing. Sadness often arrives when we're processing something significant. What are you missing most right now?",
		"These feelings make complete sense. Sadness is often how the heart processes change or loss. What would it look like to be gentle with yourself today?",
	},
	fallbackAnger: {
		"That anger is pointing to something important. It often shows up when a boundary or a value has been crossed. If your anger could speak, what would it be asking for?",
		"Your anger makes sense given what you've described. What action would feel empowering right now, something small that honors what this feeling is telling you?",
	},
	fallbackHelp: {
		"I'm really glad you're here. Reaching out takes courage. What's been happening that brought you here today?",
		"Taking the step to reach out shows real self-awareness. What would feel most helpful for us to talk about?",
	},
	fallbackGeneric: {
		"What you're sharing sounds like it carries real weight for you. How is this affecting your days, your body, your sleep? What stands out most as we sit with this together?",
		"Thank you for trusting me with this. Your experience is valid. Which part feels most important to explore first?",
	},
}

// fallbackCategory elige la categoría del respaldo por palabras clave.
func fallbackCategory(message string) string {
	msg := normalize(message)
	switch DetectResponseType(message) {
	case ResponseTypeCrisis:
		return fallbackCrisis
	case ResponseTypePanic:
		return fallbackPanic
	case ResponseTypeEscalation:
		return fallbackEscalation
	}
	switch {
	case containsAny(msg, []string{"stress"}):
		return fallbackStress
	case containsAny(msg, []string{"anxious", "anxiety"}):
		return fallbackAnxiety
	case containsAny(msg, []string{"sad", "depressed"}):
		return fallbackSadness
	case containsAny(msg, []string{"angry", "frustrated"}):
		return fallbackAnger
	case containsAny(msg, []string{"help", "support"}):
		return fallbackHelp
	default:
		return fallbackGeneric
	}
}
