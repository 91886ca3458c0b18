// Package seeds inserts the default rows a fresh installation needs.
package seeds

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/teamboard/teamboard/internal/domain/reminder"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/mappers"
	"github.com/teamboard/teamboard/internal/infrastructure/persistence/models"
)

//go:embed messagetemplates.yaml
var defaultTemplatesYAML []byte

type templateFile struct {
	Templates []struct {
		Name string `yaml:"name"`
		Body string `yaml:"body"`
	} `yaml:"templates"`
}

// ParseMessageTemplates reads a templates document. Every entry needs a
// name and a body, and names must be unique.
func ParseMessageTemplates(data []byte) ([]reminder.MessageTemplate, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse message templates: %w", err)
	}

	seen := make(map[string]bool, len(file.Templates))
	templates := make([]reminder.MessageTemplate, 0, len(file.Templates))
	for i, t := range file.Templates {
		name := strings.TrimSpace(t.Name)
		body := strings.TrimSpace(t.Body)
		if name == "" || body == "" {
			return nil, fmt.Errorf("message template #%d: name and body are required", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("message template %q is defined twice", name)
		}
		seen[name] = true

		templates = append(templates, reminder.MessageTemplate{
			Name:         name,
			Body:         body,
			Placeholders: reminder.Placeholders(body),
		})
	}

	return templates, nil
}

// DefaultMessageTemplates returns the built-in templates.
func DefaultMessageTemplates() ([]reminder.MessageTemplate, error) {
	return ParseMessageTemplates(defaultTemplatesYAML)
}

// SeedMessageTemplates inserts every template whose name is not taken yet.
// Running it twice is a no-op.
func SeedMessageTemplates(db *gorm.DB, templates []reminder.MessageTemplate) (int, error) {
	mapper := mappers.NewMessageTemplateMapper()
	created := 0

	for i := range templates {
		model, err := mapper.ToModel(&templates[i])
		if err != nil {
			return created, err
		}

		var existing int64
		if err := db.Model(&models.MessageTemplateModel{}).Where("name = ?", model.Name).Count(&existing).Error; err != nil {
			return created, fmt.Errorf("failed to check message template %q: %w", model.Name, err)
		}
		if existing > 0 {
			continue
		}

		if err := db.Create(model).Error; err != nil {
			return created, fmt.Errorf("failed to seed message template %q: %w", model.Name, err)
		}
		created++
	}

	return created, nil
}
