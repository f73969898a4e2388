package core

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChatbotInfoName names the introductory item used as the selection fallback.
const ChatbotInfoName = "Chatbot Information"

//go:embed data/knowledge.yaml
var defaultKnowledge []byte

// ItemSource is the on-disk form of a content item. Tags is a whitespace
// separated list.
type ItemSource struct {
	Name    string `yaml:"name"`
	Tags    string `yaml:"tags"`
	Content string `yaml:"content"`
}

type ContentItem struct {
	Name    string
	Content string
	tags    map[string]struct{}
}

// Tags returns the normalized tag tokens in sorted order.
func (c ContentItem) Tags() []string {
	out := make([]string, 0, len(c.tags))
	for t := range c.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether any keyword is one of the item's tags.
func (c ContentItem) Matches(keywords map[string]struct{}) bool {
	small, large := c.tags, keywords
	if len(large) < len(small) {
		small, large = large, small
	}
	for t := range small {
		if _, ok := large[t]; ok {
			return true
		}
	}
	return false
}

// KnowledgeBase is the ordered, read-only set of content items. It is built
// once at startup and shared by every request without locking.
type KnowledgeBase struct {
	items       []ContentItem
	chatbotInfo string
}

func NewKnowledgeBase(sources []ItemSource) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{items: make([]ContentItem, 0, len(sources))}
	seen := make(map[string]struct{}, len(sources))

	for i, src := range sources {
		name := strings.TrimSpace(src.Name)
		if name == "" {
			return nil, fmt.Errorf("knowledge item %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate knowledge item name %q", name)
		}
		seen[name] = struct{}{}

		item := ContentItem{
			Name:    name,
			Content: src.Content,
			tags:    tokenSet(src.Tags),
		}
		if name == ChatbotInfoName {
			kb.chatbotInfo = item.Content
		}
		kb.items = append(kb.items, item)
	}
	return kb, nil
}

// ParseKnowledgeBase decodes a YAML list of items.
func ParseKnowledgeBase(data []byte) (*KnowledgeBase, error) {
	var sources []ItemSource
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}
	return NewKnowledgeBase(sources)
}

// LoadKnowledgeBase reads the knowledge base from path, or the embedded
// default when path is empty.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	if path == "" {
		return ParseKnowledgeBase(defaultKnowledge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base %s: %w", path, err)
	}
	return ParseKnowledgeBase(data)
}

func (kb *KnowledgeBase) Len() int { return len(kb.items) }

// Items returns a copy of the items in knowledge base order.
func (kb *KnowledgeBase) Items() []ContentItem {
	out := make([]ContentItem, len(kb.items))
	copy(out, kb.items)
	return out
}

// ChatbotInfo is the content of the Chatbot Information item, or "".
func (kb *KnowledgeBase) ChatbotInfo() string { return kb.chatbotInfo }

// Contents returns every item's content in order.
func (kb *KnowledgeBase) Contents() []string {
	out := make([]string, len(kb.items))
	for i, item := range kb.items {
		out[i] = item.Content
	}
	return out
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
