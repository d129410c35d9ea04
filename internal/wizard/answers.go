package wizard

import "github.com/gosimple/slug"

// Answers is the exported view of a completed (or partial) run.
type Answers struct {
	ProjectName string   `json:"projectName" yaml:"project_name"`
	Directory   string   `json:"directory,omitempty" yaml:"directory,omitempty"`
	Language    string   `json:"language" yaml:"language"`
	Features    []string `json:"features" yaml:"features"`
}

// AnswersFrom reads the accumulated answers out of a store.
func AnswersFrom(data Reader) Answers {
	name := data.Get(KeyProjectName)
	features := SplitList(data.Get(KeyFeatures))
	if features == nil {
		features = []string{}
	}
	return Answers{
		ProjectName: name,
		Directory:   slug.Make(name),
		Language:    data.Get(KeyLanguage),
		Features:    features,
	}
}
