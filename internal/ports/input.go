package ports

// UserInputPort asks the user questions on the terminal.
type UserInputPort interface {
	// ReadInt prompts until the user enters an integer lower than
	// maxValueAllowed.
	ReadInt(prompt string, maxValueAllowed int) (int, error)
}
