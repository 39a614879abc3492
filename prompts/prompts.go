// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package prompts

import (
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed plans/*.tmpl eval/*.tmpl fields/*.tmpl
var PromptsFolder embed.FS

// Prompts renders the embedded prompt templates by name.
// Note: template.ParseFS registers templates by basename only, so every
// template file needs a unique name across the subdirectories.
type Prompts struct {
	templates *template.Template
}

func New() (*Prompts, error) {
	templates, err := template.ParseFS(PromptsFolder, "plans/*.tmpl", "eval/*.tmpl", "fields/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse prompt templates")
	}

	return &Prompts{templates: templates}, nil
}

func (p *Prompts) Format(templateName string, data any) (string, error) {
	var out strings.Builder
	if err := p.templates.ExecuteTemplate(&out, templateName+".tmpl", data); err != nil {
		return "", errors.Wrapf(err, "unable to render prompt template %s", templateName)
	}

	return strings.TrimSpace(out.String()), nil
}
