package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetRequiredText keeps prompting until the user enters non-blank text.
func GetRequiredText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		value, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(w, "Este campo es obligatorio.")
	}
}

// GetInteger keeps prompting until the user enters a valid integer.
func GetInteger(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	for {
		value, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(value)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(w, "Por favor ingrese un número válido.")
	}
}

// GetOptionalInteger reads an integer or, on a blank line, reports absence.
// A non-blank line that is not a number is re-prompted.
func GetOptionalInteger(reader *bufio.Reader, prompt string, w io.Writer) (int, bool, error) {
	for {
		value, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, false, err
		}
		if value == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(value)
		if err == nil {
			return n, true, nil
		}
		fmt.Fprintln(w, "Por favor ingrese un número válido.")
	}
}
