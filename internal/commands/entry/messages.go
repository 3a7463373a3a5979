package entrycmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-qa/pkg/interfaces"
)

const createMessageType = "qa.entry.create"

// CreateCommand authors a new entry file in the content tree. An empty ID
// lets the handler allocate the next date-sequence identifier.
type CreateCommand struct {
	// ID pins the entry identifier (YYYYMMDD-NNN). Left empty, the next free
	// identifier for today is used.
	ID string `json:"id,omitempty"`
	// Domain is the top level classification, e.g. a language or product name.
	Domain string `json:"domain,omitempty"`
	// Topic is the primary subject area.
	Topic string `json:"topic"`
	// Subtopic refines the topic.
	Subtopic string `json:"subtopic"`
	// Difficulty is one of easy, medium, hard.
	Difficulty string `json:"difficulty"`
	// Keywords tag the entry for search.
	Keywords []string `json:"keywords,omitempty"`
	// Question is the Markdown body of the question section.
	Question string `json:"question"`
	// Think is the optional chain-of-thought section.
	Think string `json:"think,omitempty"`
	// Answer is the Markdown body of the answer section.
	Answer string `json:"answer"`
	// Filename overrides the generated file name.
	Filename string `json:"filename,omitempty"`
	// Overwrite permits replacing an existing file at the target path.
	Overwrite bool `json:"overwrite,omitempty"`
}

// Type implements command.Message.
func (CreateCommand) Type() string { return createMessageType }

// Validate checks the fields the handler cannot default. The authoring
// service applies the full draft validation before anything is written.
func (cmd CreateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Domain, validation.Required),
		validation.Field(&cmd.Topic, validation.Required),
		validation.Field(&cmd.Subtopic, validation.Required),
		validation.Field(&cmd.Difficulty, validation.Required,
			validation.In(interfaces.DifficultyEasy, interfaces.DifficultyMedium, interfaces.DifficultyHard)),
		validation.Field(&cmd.Question, validation.Required),
		validation.Field(&cmd.Answer, validation.Required),
	)
}
