package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mnott/cli/internal/manifest"
	"github.com/mnott/cli/internal/platform"
)

// ScriptData holds all template variables available to script templates.
type ScriptData struct {
	Name           string         // e.g., "db-sync"
	Description    string         // Human-readable description
	DefaultCommand string         // Name of the generated example subcommand
	Deps           []manifest.Dep // Requirements including the base set
}

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string
	Files     []string
}

// Defaults for optional generation inputs.
const (
	DefaultDescription = "A command-line tool"
	DefaultCommandName = "example"

	scriptExt = ".py"
)

// commandNamePattern matches valid subcommand names. The name becomes a
// Python function, so hyphens are out.
var commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateCommandName checks that a subcommand name is usable as a Python
// function name.
func ValidateCommandName(name string) error {
	if !commandNamePattern.MatchString(name) {
		return fmt.Errorf("invalid command name %q: use lowercase letters, digits and '_', starting with a letter", name)
	}
	return nil
}

// NewScriptData creates a ScriptData with defaults applied and the base
// dependencies merged into deps.
func NewScriptData(name, description, defaultCommand string, extraDeps []manifest.Dep) *ScriptData {
	if description == "" {
		description = DefaultDescription
	}
	if defaultCommand == "" {
		defaultCommand = DefaultCommandName
	}
	return &ScriptData{
		Name:           name,
		Description:    description,
		DefaultCommand: defaultCommand,
		Deps:           manifest.Merge(extraDeps),
	}
}

// outputNames maps template basenames to output filenames where they differ
// beyond stripping the .tmpl extension.
var outputNames = map[string]string{
	"gitignore": ".gitignore",
}

// projectTemplates are the files of a standalone project, in creation order.
// The script itself is written separately so it can land under its own name.
var projectTemplates = []string{
	"requirements.txt.tmpl",
	"README.md.tmpl",
	"gitignore.tmpl",
}

var templateCache sync.Map

// loadTemplate parses an embedded template once and caches it.
func loadTemplate(name string) (*template.Template, error) {
	if v, ok := templateCache.Load(name); ok {
		return v.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(scaffoldFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

// render executes an embedded template with the given data.
func render(name string, data *ScriptData) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderScript returns the rendered script content.
func RenderScript(data *ScriptData) (string, error) {
	return render("script.py.tmpl", data)
}

// GenerateScript writes the script file for the project and bin tiers and
// marks it executable. Parent directories are created as needed.
func GenerateScript(data *ScriptData, scriptPath string) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(scriptPath), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeScript(data, scriptPath); err != nil {
		return nil, err
	}

	return &Result{
		OutputDir: filepath.Dir(scriptPath),
		Files:     []string{filepath.Base(scriptPath)},
	}, nil
}

// GenerateSupportFiles writes a standalone project's supporting files:
// requirements.txt, README.md, and .gitignore. The script itself is not
// touched, so a deployed script keeps its content.
func GenerateSupportFiles(data *ScriptData, toolDir string) (*Result, error) {
	if err := os.MkdirAll(toolDir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result := &Result{OutputDir: toolDir}

	for _, tmplName := range projectTemplates {
		content, err := render(tmplName, data)
		if err != nil {
			return nil, err
		}

		outName := strings.TrimSuffix(tmplName, ".tmpl")
		if mapped, ok := outputNames[outName]; ok {
			outName = mapped
		}

		outPath := filepath.Join(toolDir, outName)
		if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	return result, nil
}

// GenerateProject writes a full standalone project: the supporting files
// plus the rendered executable script.
func GenerateProject(data *ScriptData, toolDir string) (*Result, error) {
	result, err := GenerateSupportFiles(data, toolDir)
	if err != nil {
		return nil, err
	}

	scriptName := data.Name + scriptExt
	if err := writeScript(data, filepath.Join(toolDir, scriptName)); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, scriptName)

	return result, nil
}

// writeScript renders the script template to path and adds execute bits.
func writeScript(data *ScriptData, path string) error {
	content, err := RenderScript(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := platform.MakeExecutable(path); err != nil {
		return fmt.Errorf("marking %s executable: %w", path, err)
	}
	return nil
}
