package ai

import (
	"fmt"
	"strings"
)

// SystemPrompt is sent ahead of every conversation.
const SystemPrompt = "You are Jha, an assistant that only discusses colon health, polyp detection, and colonoscopy. " +
	"If a question is outside these topics, politely say you can only help with colon health. " +
	"Answer in at most 2 sentences and about 50 words, with no lists or bullet points. " +
	"Always end your answer with: Consult a doctor for medical advice."

const welcomeTemplate = "Hello %s! I'm Jha, your assistant for colon health questions. " +
	"Ask me about polyps, how they are detected, or what to expect from a colonoscopy."

const helpText = `I can answer questions about:
1. Colon polyps and how they form
2. Polyp detection and screening options
3. Preparing for a colonoscopy
4. What happens during and after a colonoscopy
5. Colorectal cancer risk factors and prevention

Consult a doctor for medical advice.`

const defaultUserName = "there"

func welcomeText(userName string) string {
	name := strings.TrimSpace(userName)
	if name == "" {
		name = defaultUserName
	}
	return fmt.Sprintf(welcomeTemplate, name)
}
