package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/libklein/nand2tetris/jackc/jack"
	"github.com/teris-io/cli"
)

var description = strings.ReplaceAll(`
jackc compiles Jack language source files into Hack VM modules. Given a
single .jack file it compiles that file; given a directory it compiles
every .jack file directly inside it (no recursion into subdirectories).
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("input", "A .jack file or a directory containing .jack files")).
	WithOption(cli.NewOption("xml", "Emit the parse trace as XML instead of VM code").
		WithType(cli.TypeBool)).
	WithAction(run)

func main() {
	os.Exit(app.Run(os.Args, os.Stdout))
}

func run(args []string, options map[string]string) int {
	if len(args) < 1 {
		fmt.Println("ERROR: missing input file or directory, use --help")
		return 1
	}
	_, xml := options["xml"]

	files, err := collectSources(args[0])
	if err != nil {
		fmt.Println("ERROR:", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Println("ERROR: no .jack files found in", args[0])
		return 1
	}

	failures := 0
	for _, path := range files {
		outPath, err := compileFile(path, xml)
		if err != nil {
			fmt.Printf("FAILED %s: %v\n", path, err)
			failures++
			continue
		}
		fmt.Printf("%s -> %s\n", path, outPath)
	}

	if failures > 0 {
		return 1
	}
	return 0
}

// collectSources lists the .jack files to compile: the single file given,
// or every .jack entry directly inside a directory (no recursion), sorted
// by file name.
func collectSources(fileOrDir string) ([]string, error) {
	info, err := os.Stat(fileOrDir)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %q: %w", fileOrDir, err)
	}

	if !info.IsDir() {
		return []string{fileOrDir}, nil
	}

	entries, err := os.ReadDir(fileOrDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", fileOrDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jack" {
			continue
		}
		files = append(files, filepath.Join(fileOrDir, entry.Name()))
	}
	return files, nil
}

func className(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func outputPath(path string, xml bool) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if xml {
		return base + ".xml"
	}
	return base + ".vm"
}

// compileFile translates one source file independently: a failure here
// never aborts the rest of the batch, and any partially written output is
// removed so a failed run never leaves a stale .vm/.xml file behind.
func compileFile(path string, xml bool) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	tok, err := jack.NewTokenizer(in)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}

	outPath := outputPath(path, xml)
	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening output: %w", err)
	}

	var writer jack.Writer
	if xml {
		writer = jack.NewXMLWriter(out)
	} else {
		writer = jack.NewVMWriter(out)
	}

	compiler := jack.NewCompiler(tok, writer, className(path))
	compileErr := compiler.Compile()
	closeErr := writer.Close()
	out.Close()

	if compileErr != nil || closeErr != nil {
		os.Remove(outPath)
		if compileErr != nil {
			return "", compileErr
		}
		return "", closeErr
	}

	return outPath, nil
}
