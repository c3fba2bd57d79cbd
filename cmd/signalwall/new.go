package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/signalwall/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	ProjectName string
	SiteName    string
	Today       string
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "new <name>",
		Short:       "Create a new signalwall site with starter content",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"config": "skip"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], cmd.OutOrStdout())
		},
	}
}

func runNew(name string, out io.Writer) error {
	dirName := filepath.Base(filepath.Clean(name))

	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	data := scaffoldData{
		ProjectName: dirName,
		SiteName:    toTitle(dirName),
		Today:       time.Now().Format("2006-01-02"),
	}

	fmt.Fprintf(out, "Creating new signalwall site: %s\n\n", name)

	const root = "templates"
	err := fs.WalkDir(scaffold.Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		outPath := filepath.Join(name, filepath.FromSlash(strings.TrimSuffix(rel, ".tmpl")))

		// Rename dotenv to .env.example.
		if path.Base(rel) == "dotenv.tmpl" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		tmpl, err := template.New(path.Base(p)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", p, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", p, err)
		}

		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", name)
	fmt.Fprintln(out, "  cp .env.example .env")
	fmt.Fprintln(out, "  signalwall serve")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Add posts to content/posts/posts.json and run 'signalwall check'.")
	return nil
}

// toTitle converts a hyphenated name to a title-case string.
// e.g. "my-wall" -> "My Wall"
func toTitle(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
