package scoring

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Question is one entry of the self-assessment catalog shown as the final
// wizard step.
type Question struct {
	ID          QuestionID `yaml:"id" json:"questionId"`
	Text        string     `yaml:"text" json:"question"`
	Description string     `yaml:"description" json:"description"`
}

var (
	questionsOnce sync.Once
	questions     []Question
	questionsErr  error
)

// Questions returns the embedded five-question catalog in presentation
// order.
func Questions() ([]Question, error) {
	questionsOnce.Do(func() {
		var catalog struct {
			Questions []Question `yaml:"questions"`
		}
		if err := yaml.Unmarshal(questionsYAML, &catalog); err != nil {
			questionsErr = fmt.Errorf("parse question catalog: %w", err)
			return
		}
		if len(catalog.Questions) != len(QuestionIDs) {
			questionsErr = fmt.Errorf("question catalog has %d entries, want %d",
				len(catalog.Questions), len(QuestionIDs))
			return
		}
		for i, q := range catalog.Questions {
			if q.ID != QuestionIDs[i] {
				questionsErr = fmt.Errorf("question catalog entry %d is %q, want %q",
					i, q.ID, QuestionIDs[i])
				return
			}
		}
		questions = catalog.Questions
	})
	return questions, questionsErr
}
