package service

import "testing"

func TestIsBoundaryViolation(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{name: "insult", msg: "you are an IDIOT", want: true},
		{name: "sexual", msg: "send pics now", want: true},
		{name: "masked profanity", msg: "f*** this", want: true},
		{name: "substring is not a word", msg: "my class was skillful", want: false},
		{name: "crisis is not abuse", msg: "I want to die", want: false},
		{name: "plain distress", msg: "I feel so anxious today", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBoundaryViolation(tt.msg); got != tt.want {
				t.Fatalf("IsBoundaryViolation(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestDetectResponseType(t *testing.T) {
	tests := []struct {
		msg  string
		want ResponseType
	}{
		{"I can't go on like this", ResponseTypeCrisis},
		{"I can’t go on like this", ResponseTypeCrisis},
		{"I'm having a panic attack and I'm so angry", ResponseTypePanic},
		{"I'm furious with my brother", ResponseTypeEscalation},
		{"Work was long today", ResponseTypeStandard},
	}
	for _, tt := range tests {
		if got := DetectResponseType(tt.msg); got != tt.want {
			t.Fatalf("DetectResponseType(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestNormalizeStripsAccents(t *testing.T) {
	if got := normalize("Café ÁNIMO"); got != "cafe animo" {
		t.Fatalf("unexpected normalize result: %q", got)
	}
}
