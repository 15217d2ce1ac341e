// Package docs holds the user manual, one markdown file per topic, embedded
// in the binary. The readme topic is the table of contents.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Index is the topic listing the others.
const Index = "readme"

// All is the pseudo topic expanding to every topic but the index.
const All = "*"

// ErrUnknownTopic is returned for a topic with no page in the manual.
var ErrUnknownTopic = errors.New("unknown topic")

// GetTopic returns the markdown page of topic, or of every topic for All.
func GetTopic(topic string) (string, error) {
	if topic == All {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}
	content, err := manual.ReadFile(topic + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q, see 'fundora topic %s'", ErrUnknownTopic, topic, Index)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read topic %q: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the pages of topics, one after the other.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted topics of the manual, the index excluded.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(manual, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if e.IsDir() || !ok || name == Index {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}

// Names returns the index followed by every topic, for the shell completion.
func Names() []string {
	topics, err := GetAllTopics()
	if err != nil {
		return []string{Index}
	}
	return append([]string{Index}, topics...)
}
