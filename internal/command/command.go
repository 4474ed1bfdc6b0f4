// Package command turns lines of text into engine commands.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/freeeve/warzone/internal/bot"
	"github.com/freeeve/warzone/pkg/warzone"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is one parsed command line.
type Command struct {
	Name string
	Args []string
	Raw  string
}

// Arg returns the i-th argument, or "" if absent.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

func (c Command) String() string {
	if c.Raw != "" {
		return c.Raw
	}
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

var known = map[string]bool{
	warzone.CmdLoadMap:     true,
	warzone.CmdValidateMap: true,
	warzone.CmdAddPlayer:   true,
	warzone.CmdGameStart:   true,
	warzone.CmdReplay:      true,
	warzone.CmdQuit:        true,
	warzone.CmdTournament:  true,
}

// Parse splits a line into a command name and its arguments. Command names
// are case-insensitive; arguments keep their case.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	name := strings.ToLower(fields[0])
	if !known[name] {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	return Command{Name: name, Args: fields[1:], Raw: strings.TrimSpace(line)}, nil
}

// Processor reads commands from an input provider. The same provider can
// also serve human players, so a command file may interleave commands with
// the answers to order prompts.
type Processor struct {
	in     bot.InputProvider
	prompt string
}

// NewProcessor reads commands from in, showing prompt before each line.
func NewProcessor(in bot.InputProvider, prompt string) *Processor {
	return &Processor{in: in, prompt: prompt}
}

// Next returns the next well-formed command. Blank lines and lines starting
// with '#' are skipped; malformed lines are reported to the provider and
// skipped. It returns io.EOF when input ends.
func (p *Processor) Next(ctx context.Context) (Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Command{}, err
		}
		line, err := p.in.ReadLine(p.prompt)
		if err != nil {
			return Command{}, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			p.in.Say(err.Error())
			continue
		}
		return cmd, nil
	}
}

// OpenFile loads a command file into a scripted input provider.
func OpenFile(path string) (*bot.ScriptedInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open command file: %w", err)
	}
	defer f.Close()
	return ReadScript(f)
}

// ReadScript reads every line of r into a scripted input provider.
func ReadScript(r io.Reader) (*bot.ScriptedInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return bot.NewScriptedInput(lines...), nil
}
