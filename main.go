// Command gocalc is an interactive arithmetic expression evaluator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
	"go.creack.net/gocalc/parser"
)

const (
	historyFile = ".gocalc_history"
	prompt      = "evaluator -> "
)

// evalLine runs one line through the pipeline, printing the value on
// success. Each stage reports its own diagnostics to stderr and the
// next stage only runs when the previous one stayed clean.
func evalLine(line, verb string, echo bool) bool {
	lex := lexer.New(line, nil)
	tokens := lex.Lex()
	if lex.HadError() {
		return false
	}

	p := parser.New(tokens, nil)
	expr := p.Parse()
	if p.HadError() {
		return false
	}
	if echo {
		fmt.Printf("%s : ", expr.Dump())
	}

	ev := evaluator.New(nil)
	result := ev.Evaluate(expr)
	if ev.HadError() {
		return false
	}
	fmt.Printf(verb+"\n", result)
	return true
}

func repl(verb string, echo bool) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		if line == "exit" {
			return nil
		}
		if line != "" {
			ln.AppendHistory(line)
		}
		evalLine(line, verb, echo)
	}
}

func main() {
	log.SetFlags(0)
	var (
		verb string
		echo bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.BoolVar(&echo, "ast", false, "print expression trees")
	flag.Parse()

	// With arguments, evaluate each one as a line and skip the prompt.
	if flag.NArg() > 0 {
		exitCode := 0
		for _, arg := range flag.Args() {
			if !evalLine(arg, verb, echo) {
				exitCode = 1
			}
		}
		os.Exit(exitCode)
	}

	if err := repl(verb, echo); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
