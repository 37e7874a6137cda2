package schemas

import "strings"

// Language identifies a code generation target.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageRust       Language = "rust"
	LanguageGo         Language = "go"
	LanguageTypeScript Language = "typescript"
	LanguageJava       Language = "java"
	LanguageCPP        Language = "cpp"
)

// SupportedLanguages lists every generation target, in display order.
func SupportedLanguages() []Language {
	return []Language{
		LanguagePython, LanguageRust, LanguageGo,
		LanguageTypeScript, LanguageJava, LanguageCPP,
	}
}

// ParseLanguage normalizes a user-supplied language name.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SupportedLanguages() {
		if l == known {
			return l, nil
		}
	}
	return "", &UnsupportedLanguageError{Language: s}
}

// GeneratedCode is the immutable artifact produced for one
// (architecture, language, framework) triple.
type GeneratedCode struct {
	Language      Language               `json:"language"`
	Framework     string                 `json:"framework"`
	Files         map[string]string      `json:"files"`
	Dependencies  []string               `json:"dependencies"`
	EntryPoint    string                 `json:"entry_point"`
	BuildCommands []string               `json:"build_commands"`
	RunCommands   []string               `json:"run_commands"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// Validate checks the artifact invariants: at least one file, and an entry
// point that is one of the generated files.
func (g *GeneratedCode) Validate() error {
	if g.Language == "" {
		return &ValidationError{Msg: "generated code has no language"}
	}
	if len(g.Files) == 0 {
		return &ValidationError{Msg: "generated code has no files"}
	}
	if _, ok := g.Files[g.EntryPoint]; !ok {
		return &ValidationError{Msg: "entry point " + g.EntryPoint + " is not a generated file"}
	}
	return nil
}
