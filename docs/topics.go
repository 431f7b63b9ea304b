// Package docs embeds the in-game help topics.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed *.md
var topicFS embed.FS

// GetTopic returns the content of one help topic. The special topic "*"
// expands to every topic concatenated.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(AllTopics()...)
	}
	content, err := topicFS.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the content of several help topics.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// AllTopics lists every available topic name, sorted. The readme is the
// topic index, not a topic itself.
func AllTopics() []string {
	var topics []string
	fs.WalkDir(topicFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ".md")
		if name != "readme" {
			topics = append(topics, name)
		}
		return nil
	})
	slices.Sort(topics)
	return topics
}

// Readme returns the topic index.
func Readme() string {
	content, _ := topicFS.ReadFile("readme.md")
	return string(content)
}
