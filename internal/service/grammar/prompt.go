package grammar

// Prompt is the [system, user] pair of a single completion call.
type Prompt struct {
	System string
	User   string
}

const sentenceAnalysisSystem = "You are a grammar and tense expert. When a user sends a sentence, " +
	"return a corrected version of the sentence, give a grammar score out of 10, " +
	"and briefly explain what was wrong and why. Format the result as:\n" +
	markerCorrected + " <corrected>\n" +
	markerScore + " <score>\n" +
	markerExplanation + " <explanation>"

const coachSystem = "You are a helpful grammar coach."

const coachTemplate = `
You are a friendly English Grammar Coach. Explain grammar concepts in a simple, helpful way with headings, bullet points, and examples. Be beginner-friendly and suitable for IELTS and TOEFL learners.

User: `

const correctionSystem = "You are a helpful assistant that corrects grammar mistakes."

const correctionPrefix = "Correct the grammar of this text: "

// SentenceAnalysisPrompt asks for a corrected sentence, a score out of 10 and
// an explanation, formatted with the markers ParseSentenceAnalysis reads.
func SentenceAnalysisPrompt(sentence string) Prompt {
	return Prompt{System: sentenceAnalysisSystem, User: sentence}
}

// CoachChatPrompt wraps a learner's question in the coach template.
func CoachChatPrompt(message string) Prompt {
	return Prompt{System: coachSystem, User: coachTemplate + message + "\n"}
}

// CorrectionPrompt asks for a grammar-corrected version of text.
func CorrectionPrompt(text string) Prompt {
	return Prompt{System: correctionSystem, User: correctionPrefix + text}
}
