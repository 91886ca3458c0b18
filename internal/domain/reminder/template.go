package reminder

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Template variable names supplied by the collectors.
const (
	VarActivityName = "activity_name"
	VarTaskName     = "task_name"
	VarDeadline     = "deadline"
	VarPICName      = "pic_name"
	VarStatus       = "status"
	VarActivityType = "activity_type"
	VarApproverName = "approver_name"
)

// MessageTemplate is a reusable message body with {{placeholder}} tokens.
type MessageTemplate struct {
	ID           uint
	Name         string
	Body         string
	Placeholders []string
}

// Render replaces every {{key}} in template with variables[key].
// Tokens without a matching key are left untouched.
func Render(template string, variables map[string]string) string {
	if !strings.Contains(template, "{{") {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := token[2 : len(token)-2]
		if value, ok := variables[key]; ok {
			return value
		}
		return token
	})
}

// Placeholders lists the distinct token names in body, in order of first use.
func Placeholders(body string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(body, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}
