package adapters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"projgen/internal/ports"
)

// UserInputReader asks questions on the terminal.
type UserInputReader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewUserInputReader(in io.Reader, out io.Writer) UserInputReader {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return UserInputReader{in: bufio.NewReader(in), out: out}
}

// ReadInt keeps prompting until the answer is an integer below
// maxValueAllowed. Running out of input is an error.
func (r UserInputReader) ReadInt(prompt string, maxValueAllowed int) (int, error) {
	for {
		fmt.Fprintln(r.out, prompt)
		line, err := r.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if input != "" {
			if value, convErr := strconv.Atoi(input); convErr == nil && value < maxValueAllowed {
				return value, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg("no valid answer before end of input")
			}
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read user input").
				WithCause(err)
		}
		log.Debug().Str("input", input).Msg("rejected user input")
		fmt.Fprintln(r.out, "Invalid input. Please enter a valid integer.")
	}
}

var _ ports.UserInputPort = UserInputReader{}
