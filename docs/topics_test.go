package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md, one per
// `* topic: description` line.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+\*{0,2}([^:*]+)\*{0,2}:`)
	scanner := bufio.NewScanner(strings.NewReader(Readme()))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	return topics
}

func TestTopicsMatchReadme(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	// Every listed topic loads.
	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("GetTopic(%q) error = %v", topic, err)
			}
		})
	}

	// Every shipped topic file is listed in the readme.
	for _, topic := range AllTopics() {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	for _, topic := range AllTopics() {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(*) misses topic %q", topic)
		}
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic): want error")
	}
}

func TestTopicsStartWithHeading(t *testing.T) {
	// Each topic must be well-formed markdown with a level-1 heading first,
	// so the terminal renderer shows a title.
	for _, topic := range AllTopics() {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("first block is %T, want a heading", first)
			}
			if heading.Level != 1 {
				t.Errorf("first heading level = %d, want 1", heading.Level)
			}
		})
	}
}
