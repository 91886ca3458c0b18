package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "all placeholders resolved",
			template: "Hi {{name}}, due {{date}}",
			vars:     map[string]string{"name": "Dina", "date": "2026-02-20"},
			want:     "Hi Dina, due 2026-02-20",
		},
		{
			name:     "missing placeholder left verbatim",
			template: "{{missing}}",
			vars:     map[string]string{},
			want:     "{{missing}}",
		},
		{
			name:     "nil variables",
			template: "Due {{deadline}}",
			vars:     nil,
			want:     "Due {{deadline}}",
		},
		{
			name:     "repeated placeholder",
			template: "{{pic_name}} / {{pic_name}}",
			vars:     map[string]string{"pic_name": "Dina, Budi"},
			want:     "Dina, Budi / Dina, Budi",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			vars:     map[string]string{"name": "x"},
			want:     "plain text",
		},
		{
			name:     "value containing braces is not re-expanded",
			template: "{{a}} {{b}}",
			vars:     map[string]string{"a": "{{b}}", "b": "B"},
			want:     "{{b}} B",
		},
		{
			name:     "spaces inside braces are not placeholders",
			template: "{{ name }}",
			vars:     map[string]string{"name": "Dina"},
			want:     "{{ name }}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, tt.vars))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	body := "Reminder {{activity_name}} due {{deadline}}. PIC: {{pic_name}}. Again {{activity_name}}"
	assert.Equal(t, []string{"activity_name", "deadline", "pic_name"}, Placeholders(body))
	assert.Empty(t, Placeholders("no tokens"))
}
