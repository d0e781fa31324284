package persona

import (
	"reflect"
	"testing"
)

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"PhD Researcher in Computational Biology", "researcher"},
		{"Undergraduate student preparing for exams", "student"},
		{"Analyst tracking performance trends", "analyst"},
		{"High school teacher", "teacher"},
		{"Program Manager at a logistics firm", "manager"},
		{"Startup founder exploring a new market", "entrepreneur"},
		{"Travel Blogger", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		if got := ClassifyRole(tt.description); got != tt.want {
			t.Errorf("ClassifyRole(%q): expected %q, got %q", tt.description, tt.want, got)
		}
	}
}

func TestClassifyRoleOrderedTieBreak(t *testing.T) {
	// "study" appears in both the researcher and student keyword sets;
	// the first table entry wins
	if got := ClassifyRole("someone who loves to study"); got != "researcher" {
		t.Errorf("Expected researcher, got %q", got)
	}
}

func TestClassifyRoleSubstringMatch(t *testing.T) {
	// "planning" contains the manager keyword "plan", so a role that
	// would otherwise be general classifies as manager
	if got := ClassifyRole("Travel Blogger planning a trip"); got != "manager" {
		t.Errorf("Expected manager, got %q", got)
	}
}

func TestClassifyRoleCaseInsensitive(t *testing.T) {
	if got := ClassifyRole("RESEARCH SCIENTIST"); got != "researcher" {
		t.Errorf("Expected researcher, got %q", got)
	}
}

func TestClassifyTask(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Provide a comprehensive literature review", "review"},
		{"Learn the key concepts for the final", "learn"},
		{"Examine quarterly revenue trends", "analyze"},
		{"Plan a four-day trip for college friends", "prepare"},
		{"Condense the report into one page", "summarize"},
		{"Find good restaurants nearby", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		if got := ClassifyTask(tt.description); got != tt.want {
			t.Errorf("ClassifyTask(%q): expected %q, got %q", tt.description, tt.want, got)
		}
	}
}

func TestRoleKeywords(t *testing.T) {
	kw := RoleKeywords("researcher")
	if len(kw) == 0 {
		t.Fatal("Expected keywords for researcher")
	}
	if kw[0] != "research" {
		t.Errorf("Expected first keyword research, got %q", kw[0])
	}

	if got := RoleKeywords(GeneralCategory); got != nil {
		t.Errorf("Expected nil keywords for general, got %v", got)
	}
	if got := RoleKeywords("astronaut"); got != nil {
		t.Errorf("Expected nil keywords for unknown category, got %v", got)
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext("Analyst tracking performance trends", "Summarize fund performance")

	if ctx.RoleCategory != "analyst" {
		t.Errorf("Expected analyst, got %q", ctx.RoleCategory)
	}
	if ctx.TaskCategory != "summarize" {
		t.Errorf("Expected summarize, got %q", ctx.TaskCategory)
	}
	if ctx.RoleDescription != "Analyst tracking performance trends" {
		t.Errorf("Expected raw role description preserved, got %q", ctx.RoleDescription)
	}
	if len(ctx.RoleKeywords) == 0 {
		t.Error("Expected role keywords for a classified category")
	}
}

func TestNewContextEmptyInputs(t *testing.T) {
	ctx := NewContext("", "")

	if ctx.RoleCategory != GeneralCategory || ctx.TaskCategory != GeneralCategory {
		t.Errorf("Expected general categories, got %q and %q", ctx.RoleCategory, ctx.TaskCategory)
	}
	if ctx.RoleKeywords != nil {
		t.Errorf("Expected nil role keywords, got %v", ctx.RoleKeywords)
	}
	if len(ctx.QueryKeywords) != 0 {
		t.Errorf("Expected no query keywords, got %v", ctx.QueryKeywords)
	}
}

func TestQueryKeywords(t *testing.T) {
	got := queryKeywords("Data Analyst", "analyze the data in depth")
	want := []string{"data", "analyst", "analyze", "the", "depth"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
