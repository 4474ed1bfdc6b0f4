package bot

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// InputProvider is the human player's line-oriented terminal. ReadLine
// blocks until a line is available and returns io.EOF once input ends.
type InputProvider interface {
	ReadLine(prompt string) (string, error)
	Say(msg string)
}

// ConsoleInput reads lines from r and writes prompts and messages to w.
type ConsoleInput struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewConsoleInput wraps a reader and writer, typically os.Stdin and os.Stdout.
func NewConsoleInput(r io.Reader, w io.Writer) *ConsoleInput {
	return &ConsoleInput{sc: bufio.NewScanner(r), out: w}
}

func (c *ConsoleInput) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.sc.Text()), nil
}

func (c *ConsoleInput) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}

// ScriptedInput replays fixed lines, for tests and command files.
type ScriptedInput struct {
	mu      sync.Mutex
	lines   []string
	prompts []string
	said    []string
}

// NewScriptedInput returns a provider that yields lines in order, then io.EOF.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

func (s *ScriptedInput) ReadLine(prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *ScriptedInput) Say(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.said = append(s.said, msg)
}

// Said returns every message passed to Say.
func (s *ScriptedInput) Said() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.said...)
}

// Remaining returns how many scripted lines are left.
func (s *ScriptedInput) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
