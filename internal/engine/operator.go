package engine

// Operator is the person running the tool. The engine asks it questions and
// reports progress through it instead of printing directly.
type Operator interface {
	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)

	// Ask asks for a non-empty answer, showing retry after each blank one.
	Ask(prompt, retry string) (string, error)

	// AskOptional asks for an answer that may be left blank.
	AskOptional(prompt string) (string, error)

	// AskNumber asks for a non-negative integer, showing retry after each
	// answer that is not one.
	AskNumber(prompt, retry string) (int, error)

	Info(msg string)
	Success(msg string)
	Warn(msg string)
}
