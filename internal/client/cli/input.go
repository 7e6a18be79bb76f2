package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// ReadLine reads one line from reader with the line ending trimmed. A final
// line without a newline is returned as is; io.EOF is returned only when
// nothing was read.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetSimpleText prints a prompt to w and reads a single trimmed line.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := ReadLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// TerminalFd returns the file descriptor behind r, or -1 when r is not an
// *os.File.
func TerminalFd(r io.Reader) int {
	f, ok := r.(*os.File)
	if !ok {
		return -1
	}
	return int(f.Fd())
}

// GetPassword prints prompt to w and reads a password. When fd refers to a
// terminal the input is read from it without echo; otherwise, as with piped
// input, one line is read from reader. fd must be the descriptor reader
// wraps, or -1.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, fd int, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}

	if fd >= 0 && isTerminal(fd) {
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return pw, nil
	}

	line, err := ReadLine(reader)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}
