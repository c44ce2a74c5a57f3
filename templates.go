package main

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"

	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

var entryTemplate = mustLoadTemplate(defaultTemplates, "entry.tmpl")

// mustLoadTemplate parses the named file out of a txtar archive of templates.
func mustLoadTemplate(archiveData, name string) *template.Template {
	archive := txtar.Parse([]byte(archiveData))
	for _, file := range archive.Files {
		if file.Name == name {
			return template.Must(template.New(name).Option("missingkey=error").Parse(string(file.Data)))
		}
	}
	panic(fmt.Sprintf("template %q not found in archive", name))
}

// writeEntryBlock writes the message and repeated field that replace d.
func writeEntryBlock(w io.Writer, d mapDeclaration) error {
	return entryTemplate.Execute(w, d)
}
