package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formfuncs/internal/formdata"
	"github.com/goliatone/go-formfuncs/internal/prompt"
	"github.com/goliatone/go-formfuncs/pkg/functions"
)

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, prompt.NewSurveyDriver()); err != nil {
		log.Fatalf("formfuncs-cli: %v", err)
	}
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, driver prompt.Driver) error {
	flags := flag.NewFlagSet("formfuncs-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)

	fnName := flags.String("func", "", "function to invoke (see -list)")
	dataPath := flags.String("data", "", "JSON or YAML form data file used by "+functions.NameSubmitArrays)
	interactive := flags.Bool("interactive", false, "prompt for missing arguments")
	list := flags.Bool("list", false, "list available functions")
	if err := flags.Parse(argv); err != nil {
		return err
	}

	reg := functions.Default()

	if *list {
		return listFunctions(stdout, reg)
	}

	name := strings.TrimSpace(*fnName)
	if name == "" {
		return fmt.Errorf("missing -func (available: %v)", reg.List())
	}
	def, err := reg.Get(name)
	if err != nil {
		return err
	}

	if def.Name == functions.NameSubmitArrays {
		return submit(ctx, reg, *dataPath, stdout)
	}

	args := flags.Args()
	if *interactive {
		args, err = prompt.Args(ctx, driver, def.Params, args)
		if err != nil {
			return err
		}
	}

	callArgs := make([]any, len(args))
	for i, a := range args {
		callArgs[i] = a
	}

	result, err := reg.Call(ctx, def.Name, callArgs...)
	if err != nil {
		return err
	}
	return writeJSON(stdout, result)
}

func listFunctions(w io.Writer, reg *functions.Registry) error {
	for _, name := range reg.List() {
		def, err := reg.Get(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s(%s)\t%s\n", def.Name, strings.Join(def.Params, ", "), def.Description); err != nil {
			return err
		}
	}
	return nil
}

func submit(ctx context.Context, reg *functions.Registry, path string, w io.Writer) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%s requires -data", functions.NameSubmitArrays)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	record, err := formdata.Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return err
	}

	_, err = reg.Call(ctx, functions.NameSubmitArrays, &writerGlobals{data: record, out: w})
	return err
}

// writerGlobals stands in for the browser runtime: it serves a fixed record
// and prints the submission instead of sending it.
type writerGlobals struct {
	data map[string]any
	out  io.Writer
}

type submissionPreview struct {
	ContentType string         `json:"contentType"`
	JSON        bool           `json:"json"`
	Data        map[string]any `json:"data"`
}

func (g *writerGlobals) ExportData(context.Context) (map[string]any, error) {
	return g.data, nil
}

func (g *writerGlobals) SubmitForm(_ context.Context, data map[string]any, useJSON bool, contentType string) error {
	return writeJSON(g.out, submissionPreview{
		ContentType: contentType,
		JSON:        useJSON,
		Data:        data,
	})
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
