package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// embeds all .yaml files in the templates folder into the binary at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// PromptProvider is what the role agents need from the prompt layer
type PromptProvider interface {
	System(role string, data interface{}) (string, error)
	Build(role, task string, data interface{}) (string, error)
	Roles() []string
}

type Manager struct {
	systems map[string]*template.Template            // role -> system prompt template
	tasks   map[string]map[string]*template.Template // role -> task -> user prompt template
}

// on-disk shape of a role template file
type roleTemplate struct {
	SystemPrompt string            `yaml:"system_prompt"`
	Tasks        map[string]string `yaml:"tasks"`
}

// creates a new prompt manager and loads role templates
func NewManager() (*Manager, error) {
	m := &Manager{
		systems: make(map[string]*template.Template),
		tasks:   make(map[string]map[string]*template.Template),
	}

	if err := m.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return m, nil
}

// System renders the role instructions for one role
func (m *Manager) System(role string, data interface{}) (string, error) {
	tmpl, exists := m.systems[role]
	if !exists {
		return "", fmt.Errorf("system prompt not found for role: %s", role)
	}
	return render(tmpl, data)
}

// Build renders the per-call user prompt for a role's task
func (m *Manager) Build(role, task string, data interface{}) (string, error) {
	roleTasks, exists := m.tasks[role]
	if !exists {
		return "", fmt.Errorf("templates not found for role: %s", role)
	}
	tmpl, exists := roleTasks[task]
	if !exists {
		return "", fmt.Errorf("task '%s' not found for role '%s'", task, role)
	}
	return render(tmpl, data)
}

// Roles lists the loaded role names
func (m *Manager) Roles() []string {
	roles := make([]string, 0, len(m.systems))
	for role := range m.systems {
		roles = append(roles, role)
	}
	return roles
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return sb.String(), nil
}

// loadTemplates loads all YAML role files from the embedded filesystem
func (m *Manager) loadTemplates() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var rt roleTemplate
		if err := yaml.Unmarshal(data, &rt); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		role := strings.TrimSuffix(entry.Name(), ".yaml")

		if rt.SystemPrompt == "" {
			return fmt.Errorf("template file %s has no system_prompt", entry.Name())
		}

		sysTmpl, err := template.New(role + "/system").Parse(rt.SystemPrompt)
		if err != nil {
			return fmt.Errorf("failed to compile system prompt for %s: %w", role, err)
		}
		m.systems[role] = sysTmpl

		m.tasks[role] = make(map[string]*template.Template)
		for task, text := range rt.Tasks {
			tmpl, err := template.New(role + "/" + task).Parse(text)
			if err != nil {
				return fmt.Errorf("failed to compile task '%s' for %s: %w", task, role, err)
			}
			m.tasks[role][task] = tmpl
		}
	}

	return nil
}
