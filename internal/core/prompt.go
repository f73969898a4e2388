package core

import (
	"strings"
	"unicode/utf8"
)

// MaxPromptLength is the longest accepted prompt, in characters.
const MaxPromptLength = 300

const supportivePersona = "You are a warm, supportive wellness companion. Listen carefully, respond with empathy " +
	"and keep answers short and practical. Use the reference information that follows when it is relevant. " +
	"Never diagnose or prescribe. If the user may be in danger, urge them to contact emergency services " +
	"and point them to their safety plan and emergency contacts."

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type ChatMessage struct {
	Role    string
	Content string
}

// ValidatePrompt rejects empty prompts and prompts longer than MaxPromptLength.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrMissingPrompt
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return ErrPromptTooLong
	}
	return nil
}

// SelectContext picks the knowledge base content to inject for prompt.
//
// Items whose tags share a word with the prompt are selected in knowledge
// base order. When nothing matches, the Chatbot Information item stands in;
// and because that alone says nothing about the user's topic, the selection
// is then broadened to the whole knowledge base.
func SelectContext(prompt string, kb *KnowledgeBase) ([]string, error) {
	if err := ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	keywords := tokenSet(prompt)

	var selected []string
	for _, item := range kb.items {
		if item.Matches(keywords) {
			selected = append(selected, item.Content)
		}
	}

	chatbotInfo := kb.ChatbotInfo()
	if len(selected) == 0 && chatbotInfo != "" {
		selected = []string{chatbotInfo}
	}
	if chatbotInfo != "" && len(selected) == 1 && selected[0] == chatbotInfo {
		selected = kb.Contents()
	}
	return selected, nil
}

// ComposeMessages lays out the conversation sent to the model: the persona,
// one system message per selected context item, then the user's prompt.
func ComposeMessages(prompt string, selected []string) []ChatMessage {
	messages := make([]ChatMessage, 0, len(selected)+2)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: supportivePersona})
	for _, s := range selected {
		messages = append(messages, ChatMessage{Role: RoleSystem, Content: s})
	}
	messages = append(messages, ChatMessage{Role: RoleUser, Content: prompt})
	return messages
}
