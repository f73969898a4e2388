package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioKB(t *testing.T) *KnowledgeBase {
	t.Helper()
	kb, err := NewKnowledgeBase([]ItemSource{
		{Name: ChatbotInfoName, Tags: "", Content: "INTRO"},
		{Name: "Anxiety Tips", Tags: "anxious worried", Content: "TIPS"},
	})
	require.NoError(t, err)
	return kb
}

func TestSelectContext_Scenarios(t *testing.T) {
	kb := scenarioKB(t)

	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{name: "tag match", prompt: "I feel anxious today", want: []string{"TIPS"}},
		{name: "no match broadens to everything", prompt: "xyz unrelated", want: []string{"INTRO", "TIPS"}},
		{name: "case insensitive", prompt: "So WORRIED", want: []string{"TIPS"}},
		{name: "substring does not match", prompt: "anxiousness", want: []string{"INTRO", "TIPS"}},
		{name: "punctuation is part of the token", prompt: "anxious!", want: []string{"INTRO", "TIPS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectContext(tt.prompt, kb)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectContext_KeepsKnowledgeBaseOrder(t *testing.T) {
	kb, err := NewKnowledgeBase([]ItemSource{
		{Name: ChatbotInfoName, Content: "INTRO"},
		{Name: "Sleep", Tags: "sleep tired", Content: "SLEEP"},
		{Name: "Stress", Tags: "stress work", Content: "STRESS"},
		{Name: "Anxiety", Tags: "anxious", Content: "ANXIETY"},
	})
	require.NoError(t, err)

	got, err := SelectContext("anxious about work and cannot sleep", kb)
	require.NoError(t, err)
	assert.Equal(t, []string{"SLEEP", "STRESS", "ANXIETY"}, got)
}

func TestSelectContext_WithoutChatbotInfo(t *testing.T) {
	kb, err := NewKnowledgeBase([]ItemSource{
		{Name: "Sleep", Tags: "sleep", Content: "SLEEP"},
	})
	require.NoError(t, err)

	got, err := SelectContext("hello there", kb)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = SelectContext("sleep", kb)
	require.NoError(t, err)
	assert.Equal(t, []string{"SLEEP"}, got)
}

func TestSelectContext_ChatbotInfoTagMatchAloneBroadens(t *testing.T) {
	kb, err := NewKnowledgeBase([]ItemSource{
		{Name: ChatbotInfoName, Tags: "help app", Content: "INTRO"},
		{Name: "Sleep", Tags: "sleep", Content: "SLEEP"},
	})
	require.NoError(t, err)

	got, err := SelectContext("what can this app do", kb)
	require.NoError(t, err)
	assert.Equal(t, []string{"INTRO", "SLEEP"}, got)

	got, err = SelectContext("app for sleep", kb)
	require.NoError(t, err)
	assert.Equal(t, []string{"INTRO", "SLEEP"}, got)
}

func TestValidatePrompt_Length(t *testing.T) {
	kb := scenarioKB(t)

	_, err := SelectContext(strings.Repeat("a", MaxPromptLength), kb)
	assert.NoError(t, err)

	_, err = SelectContext(strings.Repeat("a", MaxPromptLength+1), kb)
	assert.ErrorIs(t, err, ErrPromptTooLong)

	// Length is counted in characters, not bytes.
	_, err = SelectContext(strings.Repeat("é", MaxPromptLength), kb)
	assert.NoError(t, err)

	var verr *ValidationError
	_, err = SelectContext("   \n\t", kb)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "missing prompt", verr.Reason)

	_, err = SelectContext("", kb)
	assert.ErrorIs(t, err, ErrMissingPrompt)
}

func TestComposeMessages(t *testing.T) {
	msgs := ComposeMessages("I feel anxious today", []string{"A", "B"})

	require.Len(t, msgs, 4)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, supportivePersona, msgs[0].Content)
	assert.Equal(t, ChatMessage{Role: RoleSystem, Content: "A"}, msgs[1])
	assert.Equal(t, ChatMessage{Role: RoleSystem, Content: "B"}, msgs[2])
	assert.Equal(t, ChatMessage{Role: RoleUser, Content: "I feel anxious today"}, msgs[3])

	assert.Len(t, ComposeMessages("hi", nil), 2)
}
