// Package config loads target manifests: YAML lists of files to create, rendered as Go templates.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/ShivamKR12/GameEngine/internal/env"
)

// Manifest describes a batch of target paths.
type Manifest struct {
	// EnvFiles lists dotenv files loaded before rendering, relative to the manifest.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// BaseDir is joined onto relative targets when set.
	BaseDir string `yaml:"baseDir,omitempty"`
	// Targets lists the files to create, in order.
	Targets []string `yaml:"targets"`
}

// LoadOptions carries inputs that influence manifest rendering.
type LoadOptions struct {
	// UserVars are inline variables exposed as .Vars.
	UserVars env.Vars
}

// TemplateContext is the data exposed to manifest templates.
type TemplateContext struct {
	// ManifestDir is the absolute directory of the manifest file.
	ManifestDir string
	// Vars merges OS env, envFiles and user variables.
	Vars env.Vars
}

// rawHeader holds the fields needed before templating.
type rawHeader struct {
	EnvFiles []string `yaml:"envFiles"`
}

// LoadManifest reads, renders and parses the manifest at path and returns it with
// BaseDir and Targets resolved.
func LoadManifest(path string, opts LoadOptions) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("manifest path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path: %w", err)
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", absPath, err)
	}

	var header rawHeader
	if err := yaml.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("parse manifest header: %w", err)
	}

	manifestDir := filepath.Dir(absPath)
	fileVars, err := env.LoadEnvFiles(manifestDir, header.EnvFiles)
	if err != nil {
		return nil, err
	}

	ctx := TemplateContext{
		ManifestDir: manifestDir,
		Vars:        env.Merge(env.FromOS(), fileVars, opts.UserVars),
	}

	rendered, err := RenderTemplate(filepath.Base(absPath), raw, ctx)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(rendered, &m); err != nil {
		return nil, fmt.Errorf("parse rendered manifest: %w", err)
	}

	m.resolve(manifestDir)
	return &m, nil
}

// resolve anchors BaseDir to the manifest directory and joins relative targets onto it.
func (m *Manifest) resolve(manifestDir string) {
	base := strings.TrimSpace(m.BaseDir)
	if base == "" {
		return
	}
	if !filepath.IsAbs(base) {
		base = filepath.Join(manifestDir, base)
	}
	m.BaseDir = base

	for i, t := range m.Targets {
		if t == "" || filepath.IsAbs(t) {
			continue
		}
		m.Targets[i] = filepath.Join(base, t)
	}
}

// RenderTemplate renders raw with the manifest template helpers.
// Unknown .Vars keys render as empty strings so that default can apply.
func RenderTemplate(name string, raw []byte, ctx TemplateContext) ([]byte, error) {
	tmpl, err := template.New(name).
		Option("missingkey=zero").
		Funcs(buildFuncMap(ctx)).
		Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func buildFuncMap(ctx TemplateContext) template.FuncMap {
	return template.FuncMap{
		"default":    funcDef,
		"envOr":      funcEnvOr(ctx.Vars),
		"toLower":    strings.ToLower,
		"slug":       funcSlug,
		"trimPrefix": funcTrimPrefix,
	}
}

// funcDef returns def when value is blank.
func funcDef(def, value string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

// funcSlug normalizes a value into a lower-case dash-separated slug.
func funcSlug(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, " ", "-")
	v = strings.ReplaceAll(v, "_", "-")
	return v
}

func funcEnvOr(vars env.Vars) func(key, def string) string {
	return func(key, def string) string {
		if v, ok := vars[key]; ok && v != "" {
			return v
		}
		return def
	}
}

func funcTrimPrefix(prefix, value string) string {
	return strings.TrimPrefix(value, prefix)
}
