package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/voxl-lang/vasm"
	"github.com/voxl-lang/vasm/isa"
	"github.com/voxl-lang/vasm/lexer"
	"github.com/voxl-lang/vasm/lexer/lexmach"
	"github.com/voxl-lang/vasm/sym"
	"github.com/voxl-lang/vasm/text"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 The vasm authors

*/

// tracer traces with key 'vasm.cli'.
func tracer() tracing.Trace {
	return tracing.Select("vasm.cli")
}

// main() drives the assembler frontend from the command line. Given source
// files, it tokenizes them and dumps the token vector, or lists the labels
// they define. Without files it starts an interactive CLI where users may
// enter assembly lines and inspect how they lex.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	mode := flag.String("mode", "unsigned", "Default numeric mode [signed|unsigned]")
	opcodes := flag.Bool("opcodes", false, "List the instruction table and exit")
	labels := flag.Bool("labels", false, "List label/const symbols instead of tokens")
	coarse := flag.Bool("coarse", false, "Scan with the error-tolerant coarse scanner")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	if *opcodes {
		listOpcodes()
		return
	}
	numeric, err := numericMode(*mode)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	var adapter *lexmach.Adapter
	if *coarse {
		if adapter, err = lexmach.NewAdapter(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	registry := text.NewRegistry()
	if flag.NArg() == 0 {
		pterm.Info.Println("Welcome to the vasm lexer") // colored welcome message
		tracer().Infof("Quit with <ctrl>D")             // inform user how to stop the CLI
		repl(registry, numeric, adapter)
		return
	}
	exit := 0
	for _, name := range flag.Args() {
		if err := lexFile(registry, name, numeric, *labels, adapter); err != nil {
			exit = 1
		}
	}
	os.Exit(exit)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func numericMode(m string) (lexer.NumericMode, error) {
	switch strings.ToLower(m) {
	case "signed":
		return lexer.Signed, nil
	case "unsigned":
		return lexer.Unsigned, nil
	}
	return lexer.Unsigned, fmt.Errorf("unknown numeric mode: %s", m)
}

// lexFile tokenizes one source file and prints its tokens or its symbols.
// With a coarse adapter it scans error-tolerantly instead, skipping
// unscannable input.
func lexFile(registry *text.Registry, name string, mode lexer.NumericMode, labels bool, adapter *lexmach.Adapter) error {
	content, err := ioutil.ReadFile(name)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	file := registry.Add(name, string(content))
	if adapter != nil {
		coarse, err := coarseScan(adapter, file.Content())
		if err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
		tracer().Infof("%s: %d tokens (coarse)", name, len(coarse))
		printCoarse(coarse)
		return nil
	}
	l := lexer.New(file.Content(), file, mode)
	if err := l.Process(); err != nil {
		renderError(err)
		tracer().Debugf("aborted at %s after %d tokens", l.Pos(), len(l.Tokens()))
		return err
	}
	tokens := l.Tokens()
	tracer().Infof("%s: %d tokens over %s", name, len(tokens), tokensSpan(tokens))
	if labels {
		printSymbols(collectSymbols(tokens))
		return nil
	}
	printTokens(tokens)
	return nil
}

// repl reads assembly lines and shows how each one lexes.
func repl(registry *text.Registry, mode lexer.NumericMode, adapter *lexmach.Adapter) {
	rl, err := readline.New("vasm> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	lineno := 0
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		lineno++
		if adapter != nil {
			coarse, err := coarseScan(adapter, line)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue
			}
			printCoarse(coarse)
			continue
		}
		file := registry.Add(fmt.Sprintf("repl:%d", lineno), line)
		tokens, err := tokenizeLine(line, file, mode)
		if err != nil {
			renderError(err)
			continue
		}
		printTokens(tokens)
	}
	println("Good bye!")
}

// tokenizeLine recovers from the float-literal placeholder panic, so an
// interactive session survives input the lexer refuses to guess at.
func tokenizeLine(line string, file *text.FileInfo, mode lexer.NumericMode) (tokens []lexer.Token, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	l := lexer.New(line, file, mode)
	if err := l.Process(); err != nil {
		return nil, err
	}
	return l.Tokens(), nil
}

func printTokens(tokens []lexer.Token) {
	for i, t := range tokens {
		pterm.Println(fmt.Sprintf(" %4d | %-28s | %q", i, t.String(), t.Lexeme()))
	}
}

// coarseScan drains the error-tolerant scanner over one input. Unscannable
// stretches are logged by the scanner and skipped, never fatal.
func coarseScan(adapter *lexmach.Adapter, input string) ([]vasm.Token, error) {
	scanner, err := adapter.Scanner(input)
	if err != nil {
		return nil, err
	}
	var tokens []vasm.Token
	for tok := scanner.NextToken(); tok.TokType() != lexmach.EOF; tok = scanner.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func printCoarse(tokens []vasm.Token) {
	for i, t := range tokens {
		pterm.Println(fmt.Sprintf(" %4d | %-10s | %q", i, lexmach.TokName(t.TokType()), t.Lexeme()))
	}
}

// tokensSpan folds the token spans into one span covering the whole vector.
func tokensSpan(tokens []lexer.Token) vasm.Span {
	var span vasm.Span
	for _, t := range tokens {
		if span.IsNull() {
			span = t.Span()
			continue
		}
		span = span.Extend(t.Span())
	}
	return span
}

// collectSymbols scans a token vector for label definitions (identifier
// followed by ':') and %const names.
func collectSymbols(tokens []lexer.Token) *sym.Table {
	table := sym.NewTable()
	for i, t := range tokens {
		switch {
		case t.Type == lexer.Identifier && i+1 < len(tokens) && tokens[i+1].Type == lexer.Colon:
			s, _ := table.Define(t.Lexeme())
			s.WithKind(sym.Label).WithDef(t.Range)
		case t.Type == lexer.Constant && i+1 < len(tokens) && tokens[i+1].Type == lexer.Identifier:
			s, _ := table.Define(tokens[i+1].Lexeme())
			s.WithKind(sym.Const).WithDef(tokens[i+1].Range)
		}
	}
	return table
}

func printSymbols(table *sym.Table) {
	if table.Size() == 0 {
		pterm.Info.Println("no symbols")
		return
	}
	table.Each(func(name string, s *sym.Symbol) {
		pterm.Println(fmt.Sprintf(" %-8s | %-24s | %s", s.Knd, name, s.Def))
	})
}

func listOpcodes() {
	isa.EachMnemonic(func(mnemonic string, code isa.Opcode) {
		pterm.Println(fmt.Sprintf(" 0x%02x | %s", uint8(code), mnemonic))
	})
	tracer().Infof("%d instructions", isa.Count())
}

// renderError points at the offending source location, when the error
// carries one.
func renderError(err error) {
	pterm.Error.Println(err.Error())
	var lerr *lexer.Error
	if !errors.As(err, &lerr) || lerr.Range.File == nil {
		return
	}
	line := lerr.Range.File.Line(lerr.Range.Start.Row)
	if line == "" {
		return
	}
	width := lerr.Range.Len()
	if width < 1 {
		width = 1
	}
	pterm.Println("  " + line)
	pterm.Println("  " + strings.Repeat(" ", lerr.Range.Start.Col) + strings.Repeat("^", width))
}
