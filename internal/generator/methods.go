package generator

// LearningMethods catalogs the study techniques offered per learning style.
// They are preference metadata: stored on the plan, surfaced by the create
// form, never used for scheduling.
var LearningMethods = map[string][]string{
	"visual":      {"Flashcards", "Mind Maps", "Diagrams", "Video Tutorials"},
	"auditory":    {"Podcasts", "Discussion Groups", "Voice Recordings", "Lectures"},
	"kinesthetic": {"Practice Problems", "Lab Work", "Simulations", "Hands-on Projects"},
	"reading":     {"Textbooks", "Articles", "Research Papers", "Note-taking"},
}

// LearningStyles lists the catalog keys in display order.
var LearningStyles = []string{"visual", "auditory", "kinesthetic", "reading"}
