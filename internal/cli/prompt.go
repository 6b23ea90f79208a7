package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptLine prints the prompt and reads one trimmed line. A final line
// without a trailing newline still counts as input; any other read error
// (including a closed stdin) propagates to the caller.
func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptChoice blocks until the user enters an integer in [1, max],
// re-prompting indefinitely on anything else. Invalid input is not an
// error path; only a failed read ends the loop.
func promptChoice(reader *bufio.Reader, out io.Writer, prompt, invalidMessage string, max int) (int, error) {
	for {
		line, err := promptLine(reader, out, prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err == nil && value >= 1 && value <= max {
			return value, nil
		}

		fmt.Fprintln(out, invalidMessage)
	}
}
