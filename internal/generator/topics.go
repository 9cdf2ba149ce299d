package generator

import "strings"

// topicDomain pairs the keywords that identify a subject area with its
// canonical ordered topic list.
type topicDomain struct {
	keywords []string
	topics   []string
}

// topicDomains is checked in order; the first domain whose keyword appears in
// the subject wins. Domains are never combined.
var topicDomains = []topicDomain{
	{
		keywords: []string{"math"},
		topics:   []string{"Algebra", "Calculus", "Statistics", "Geometry", "Trigonometry"},
	},
	{
		keywords: []string{"science", "physics", "chemistry", "biology"},
		topics:   []string{"Physics", "Chemistry", "Biology", "Environmental Science"},
	},
	{
		keywords: []string{"language", "english", "literature"},
		topics:   []string{"Grammar", "Vocabulary", "Reading Comprehension", "Writing", "Speaking"},
	},
	{
		keywords: []string{"history"},
		topics:   []string{"Ancient History", "Modern History", "World Wars", "Political Systems"},
	},
	{
		keywords: []string{"business", "management"},
		topics:   []string{"Marketing", "Finance", "Operations", "Strategy", "Leadership"},
	},
}

// genericTopics is the fallback when no domain keyword matches the subject.
var genericTopics = []string{"Introduction", "Core Concepts", "Advanced Topics", "Applications", "Review"}

// ResolveTopics maps a free-text subject to its canonical ordered topic list
// via case-insensitive substring matching. Shared by the exam and subject
// builders.
func ResolveTopics(subject string) []string {
	lower := strings.ToLower(subject)
	for _, domain := range topicDomains {
		for _, kw := range domain.keywords {
			if strings.Contains(lower, kw) {
				return domain.topics
			}
		}
	}
	return genericTopics
}
