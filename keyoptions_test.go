package mnemonikey

import "testing"

func TestUserIDForms(t *testing.T) {
	cases := []struct {
		name string
		opts *KeyOptions
		want string
	}{
		{"nil", nil, ""},
		{"name only", &KeyOptions{Name: "Jane Doe"}, "Jane Doe"},
		{"comment without name is ignored", &KeyOptions{Comment: "work", Email: "jane@example.com"}, " <jane@example.com>"},
		{"name and email", &KeyOptions{Name: "Jane Doe", Email: "jane@example.com"}, "Jane Doe <jane@example.com>"},
		{"name and comment", &KeyOptions{Name: "Jane Doe", Comment: "work"}, "Jane Doe (work)"},
		{
			"name, comment and email",
			&KeyOptions{Name: "Jane Doe", Comment: "work", Email: "jane@example.com"},
			"Jane Doe (work) <jane@example.com>",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.opts.UserID(); got != tc.want {
				t.Errorf("UserID() = %q, want %q", got, tc.want)
			}
		})
	}
}
