package prompts

import (
	"strings"
	"testing"
)

func TestNewManagerLoadsRoles(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	roles := m.Roles()
	want := map[string]bool{"interviewer": false, "coach": false, "scorer": false}
	for _, role := range roles {
		if _, ok := want[role]; ok {
			want[role] = true
		}
	}
	for role, found := range want {
		if !found {
			t.Fatalf("expected role %s to be loaded", role)
		}
	}
}

func TestSystemPromptRendering(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	sys, err := m.System("interviewer", map[string]string{
		"Technology": "Go",
		"Position":   "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("System failed: %v", err)
	}
	if !strings.Contains(sys, "Backend Engineer position focusing on Go") {
		t.Fatalf("system prompt missing role context: %s", sys)
	}
	if !strings.Contains(sys, "ONE question per response") {
		t.Fatalf("system prompt missing single-question rule: %s", sys)
	}
}

func TestBuildTaskPrompt(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	prompt, err := m.Build("scorer", "evaluate", map[string]string{
		"Question": "What is a channel?",
		"Answer":   "A typed conduit.",
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(prompt, "What is a channel?") || !strings.Contains(prompt, "A typed conduit.") {
		t.Fatalf("evaluate prompt missing question or answer: %s", prompt)
	}
}

func TestBuildUnknownRoleOrTask(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := m.Build("referee", "judge", nil); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if _, err := m.Build("coach", "roast", nil); err == nil {
		t.Fatal("expected error for unknown task")
	}
	if _, err := m.System("referee", nil); err == nil {
		t.Fatal("expected error for unknown system role")
	}
}
