package corpus

import "mindcare/internal/domain"

// DefaultEntries devuelve el corpus integrado que se usa cuando no hay archivo ni base configurados.
func DefaultEntries() []domain.TemplateEntry {
	return []domain.TemplateEntry{
		{
			Topic:       domain.TopicAnxietyCoping,
			Keywords:    []string{"anxiety", "anxious", "worried", "nervous", "overthinking"},
			UserContext: "I keep worrying about everything and my mind will not stop racing with what ifs",
			Response:    "It sounds like your mind is working overtime trying to protect you. Let's slow things down: name the worry that feels loudest, then ask yourself what you actually know for certain right now. Writing worries down and setting a short worry window each day can loosen their grip.",
			Technique:   domain.TechniqueCognitiveRestructuring,
			Tone:        domain.ToneEmpatheticSupportive,
		},
		{
			Topic:       domain.TopicWorkplaceStress,
			Keywords:    []string{"deadline", "boss", "workload", "overtime", "job pressure"},
			UserContext: "My job is crushing me with deadlines and my boss keeps adding more tasks",
			Response:    "Carrying that much pressure at your job is exhausting. Try listing every task, marking what is truly urgent, and naming one thing you can renegotiate or delegate. Protecting short breaks during the day is part of doing good work, not a distraction from it.",
			Technique:   domain.TechniqueBriefIntervention,
			Tone:        domain.ToneUnderstandingPractical,
		},
		{
			Topic:       domain.TopicDepressionSupport,
			Keywords:    []string{"depressed", "hopeless", "empty", "worthless", "numb"},
			UserContext: "I feel empty and nothing seems worth doing anymore, every day feels the same",
			Response:    "I'm really glad you told me. When everything feels heavy, even small actions count. Could you pick one gentle activity for today, like a short walk or a shower, and notice how you feel afterwards? If these feelings persist, reaching out to a professional can make a real difference.",
			Technique:   domain.TechniqueBehavioralActivation,
			Tone:        domain.ToneEmpatheticSupportive,
		},
		{
			Topic:       domain.TopicRelationshipIssues,
			Keywords:    []string{"relationship", "partner", "marriage", "breakup", "argument"},
			UserContext: "My partner and I keep fighting and I do not know how to talk to them anymore",
			Response:    "Conflict with someone you love can feel so draining. When you talk next, try describing your feelings with 'I feel' statements and ask what they need too. Listening to understand rather than to reply often softens the conversation.",
			Technique:   domain.TechniqueActiveListening,
			Tone:        domain.ToneEmpatheticSupportive,
		},
		{
			Topic:       domain.TopicGriefLoss,
			Keywords:    []string{"grief", "passed away", "funeral", "mourning", "lost my"},
			UserContext: "Someone close to me died recently and I cannot stop thinking about them",
			Response:    "I'm so sorry for your loss. Grief has no timetable and it comes in waves. Allow yourself to remember them, talk about them, and rest when you need to. Leaning on people who knew them can help you carry this together.",
			Technique:   domain.TechniqueValidation,
			Tone:        domain.ToneEmpatheticSupportive,
		},
		{
			Topic:       domain.TopicAngerManagement,
			Keywords:    []string{"angry", "furious", "rage", "lose my temper", "irritated"},
			UserContext: "I get so angry at small things and then I regret how I reacted",
			Response:    "Anger often signals that something important to you feels threatened. When you notice the heat rising, pause, breathe out slowly and step away for a few minutes. Afterwards, ask yourself what need was underneath the anger.",
			Technique:   domain.TechniqueCognitiveRestructuring,
			Tone:        domain.ToneCalmReassuring,
		},
		{
			Topic:       domain.TopicSelfEsteem,
			Keywords:    []string{"confidence", "self-worth", "insecure", "not good enough", "inadequate"},
			UserContext: "I never feel good enough and always doubt myself compared to everyone",
			Response:    "That inner critic can be loud. Try writing down three things you handled well this week, however small, and speak to yourself the way you would speak to a friend. Confidence grows from noticing evidence, not from waiting to feel ready.",
			Technique:   domain.TechniqueCognitiveRestructuring,
			Tone:        domain.ToneEncouraging,
		},
		{
			Topic:       domain.TopicTraumaResponse,
			Keywords:    []string{"trauma", "flashback", "ptsd", "triggered", "nightmares"},
			UserContext: "Memories of what happened keep coming back and I feel like I am there again",
			Response:    "What you're experiencing is a real response to something painful, and you're not alone. Right now, notice five things you can see and feel your feet on the ground. A trauma-informed therapist can help you process these memories safely.",
			Technique:   domain.TechniqueGrounding,
			Tone:        domain.ToneCrisisSupport,
		},
		{
			Topic:       domain.TopicPanicAttacks,
			Keywords:    []string{"panic attack", "heart racing", "can't breathe", "dizzy", "chest tight"},
			UserContext: "Suddenly my heart races and I cannot breathe and I think something terrible is happening",
			Response:    "Panic feels terrifying, but it will pass and it cannot hurt you. Breathe in for four, hold for seven, and out for eight. Keep your feet flat on the floor and name what you can see around you. I'm right here with you.",
			Technique:   domain.TechniqueGrounding,
			Tone:        domain.ToneCrisisSupport,
		},
		{
			Topic:       domain.TopicSocialAnxiety,
			Keywords:    []string{"social", "embarrassed", "judged", "awkward", "crowd"},
			UserContext: "I avoid parties because I feel everyone is judging me and I say something awkward",
			Response:    "Feeling watched in social situations is very common. Try setting a small goal, like staying twenty minutes or asking one question, and notice that most people are focused on themselves. Each small step builds evidence that you can cope.",
			Technique:   domain.TechniquePsychoeducation,
			Tone:        domain.ToneUnderstandingPractical,
		},
		{
			Topic:       domain.TopicProcrastination,
			Keywords:    []string{"procrastinate", "procrastinating", "putting off", "unmotivated", "distracted"},
			UserContext: "I keep putting off important tasks and then feel guilty about it",
			Response:    "Procrastination is usually about feelings, not laziness. Pick the smallest possible first step and set a timer for ten minutes. Starting is often the hardest part, and momentum tends to follow.",
			Technique:   domain.TechniqueBriefIntervention,
			Tone:        domain.ToneEncouraging,
		},
		{
			Topic:       domain.TopicDecisionMaking,
			Keywords:    []string{"decision", "decide", "indecisive", "choice", "torn between"},
			UserContext: "I cannot decide what to do and I am afraid of making the wrong choice",
			Response:    "Big choices can feel paralysing. Write down what matters most to you, then check each option against those values. Remember that very few decisions are permanent, and you can adjust as you learn more.",
			Technique:   domain.TechniquePsychoeducation,
			Tone:        domain.ToneUnderstandingPractical,
		},
		{
			Topic:       domain.TopicComparison,
			Keywords:    []string{"comparing", "compare myself", "jealous", "envy", "behind everyone"},
			UserContext: "Everyone on social media seems more successful and I feel behind",
			Response:    "Comparison shows you someone else's highlight reel next to your behind-the-scenes. Try noticing what you value in your own path and limit the feeds that leave you feeling smaller.",
			Technique:   domain.TechniqueCognitiveRestructuring,
			Tone:        domain.ToneEncouraging,
		},
		{
			Topic:       domain.TopicMindfulnessIntroduction,
			Keywords:    []string{"mindfulness", "meditation", "present moment", "breathing exercise", "relax"},
			UserContext: "How can I start practicing mindfulness to feel more present",
			Response:    "Mindfulness is simply noticing the present moment without judgement. Start with two minutes a day: sit comfortably, follow your breath, and gently return whenever your mind wanders. Consistency matters more than duration.",
			Technique:   domain.TechniquePsychoeducation,
			Tone:        domain.ToneCalmReassuring,
		},
		{
			Topic:       domain.TopicBoundarySetting,
			Keywords:    []string{"boundaries", "say no", "people pleaser", "taken advantage", "overcommitted"},
			UserContext: "I always say yes to everyone and end up drained with no time for myself",
			Response:    "Setting boundaries is a way of respecting both yourself and others. Practice a simple phrase like 'I can't take that on right now' and notice that a kind no is still kind.",
			Technique:   domain.TechniqueActiveListening,
			Tone:        domain.ToneEncouraging,
		},
		{
			Topic:       domain.TopicDepressionSupport,
			Keywords:    []string{"suicidal", "want to die", "end my life", "self harm"},
			UserContext: "I do not want to be here anymore and I think about ending everything",
			Response:    "I'm really concerned about your safety and I'm glad you reached out. You deserve support right now: please contact a crisis line or emergency services, or someone you trust who can stay with you. You don't have to go through this alone.",
			Technique:   domain.TechniqueSafetyPlanning,
			Tone:        domain.ToneCrisisSupport,
		},
	}
}
