package command

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/freeeve/warzone/internal/bot"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		name string
		args []string
		err  error
	}{
		{"loadmap maps/small.map", "loadmap", []string{"maps/small.map"}, nil},
		{"  AddPlayer Alice aggressive ", "addplayer", []string{"Alice", "aggressive"}, nil},
		{"gamestart", "gamestart", nil, nil},
		{"tournament -M a b -P x y -G 2 -D 10", "tournament", []string{"-M", "a", "b", "-P", "x", "y", "-G", "2", "-D", "10"}, nil},
		{"", "", nil, ErrEmptyCommand},
		{"fly away", "", nil, ErrUnknownCommand},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("Parse(%q): expected %v, got %v", tt.line, tt.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.line, err)
		}
		if cmd.Name != tt.name || len(cmd.Args) != len(tt.args) {
			t.Errorf("Parse(%q) = %+v", tt.line, cmd)
			continue
		}
		for i := range tt.args {
			if cmd.Arg(i) != tt.args[i] {
				t.Errorf("Parse(%q) arg %d = %q, want %q", tt.line, i, cmd.Arg(i), tt.args[i])
			}
		}
	}
}

func TestCommandArgOutOfRange(t *testing.T) {
	cmd, _ := Parse("validatemap")
	if cmd.Arg(0) != "" || cmd.Arg(-1) != "" {
		t.Error("missing args should be empty")
	}
}

func TestProcessorSkipsNoise(t *testing.T) {
	in := bot.NewScriptedInput("", "# comment", "jump", "loadmap x.map", "quit")
	p := NewProcessor(in, "> ")
	ctx := context.Background()

	cmd, err := p.Next(ctx)
	if err != nil || cmd.Name != "loadmap" || cmd.Arg(0) != "x.map" {
		t.Fatalf("expected loadmap, got %+v %v", cmd, err)
	}
	if said := in.Said(); len(said) != 1 || !strings.Contains(said[0], "unknown command") {
		t.Errorf("expected unknown command report, got %v", said)
	}
	if cmd, _ = p.Next(ctx); cmd.Name != "quit" {
		t.Errorf("expected quit, got %s", cmd.Name)
	}
	if _, err := p.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestProcessorHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewProcessor(bot.NewScriptedInput("quit"), "")
	if _, err := p.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestReadScript(t *testing.T) {
	in, err := ReadScript(strings.NewReader("loadmap a.map\r\nvalidatemap\n"))
	if err != nil {
		t.Fatal(err)
	}
	line, _ := in.ReadLine("")
	if line != "loadmap a.map" {
		t.Errorf("unexpected first line %q", line)
	}
}

func TestOpenFileMissing(t *testing.T) {
	if _, err := OpenFile("testdata/nope.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
