package generator

import "testing"

func TestResolveTopics(t *testing.T) {
	tests := []struct {
		subject   string
		wantFirst string
		wantCount int
	}{
		{"Mathematics", "Algebra", 5},
		{"math 101", "Algebra", 5},
		{"Organic Chemistry", "Physics", 4},
		{"Physics", "Physics", 4},
		{"Marine Biology", "Physics", 4},
		{"English Literature", "Grammar", 5},
		{"Spanish Language", "Grammar", 5},
		{"World History", "Ancient History", 4},
		{"Business Administration", "Marketing", 5},
		{"Project Management", "Marketing", 5},
		{"Underwater Basket Weaving", "Introduction", 5},
		{"", "Introduction", 5},
	}

	for _, tc := range tests {
		t.Run(tc.subject, func(t *testing.T) {
			topics := ResolveTopics(tc.subject)
			if len(topics) != tc.wantCount {
				t.Fatalf("ResolveTopics(%q) returned %d topics, want %d", tc.subject, len(topics), tc.wantCount)
			}
			if topics[0] != tc.wantFirst {
				t.Errorf("ResolveTopics(%q)[0] = %q, want %q", tc.subject, topics[0], tc.wantFirst)
			}
		})
	}
}

func TestResolveTopicsPrecedence(t *testing.T) {
	// Math is checked before science; the first matching domain wins and
	// domains never combine.
	topics := ResolveTopics("Math and Science")
	if topics[0] != "Algebra" {
		t.Errorf("expected math topics for %q, got %v", "Math and Science", topics)
	}

	topics = ResolveTopics("History of Business")
	if topics[0] != "Ancient History" {
		t.Errorf("expected history topics (checked before business), got %v", topics)
	}
}

func TestResolveTopicsCaseInsensitive(t *testing.T) {
	for _, subject := range []string{"MATH", "Math", "mAtH exam prep"} {
		topics := ResolveTopics(subject)
		if topics[0] != "Algebra" {
			t.Errorf("ResolveTopics(%q)[0] = %q, want Algebra", subject, topics[0])
		}
	}
}

func TestGenericFallback(t *testing.T) {
	want := []string{"Introduction", "Core Concepts", "Advanced Topics", "Applications", "Review"}
	topics := ResolveTopics("Quantum Basket Weaving")
	for i, topic := range want {
		if topics[i] != topic {
			t.Errorf("fallback[%d] = %q, want %q", i, topics[i], topic)
		}
	}
}
