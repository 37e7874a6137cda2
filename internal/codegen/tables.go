package codegen

import "github.com/xkilldash9x/reify-cli/api/schemas"

// The static lookup tables below are part of the generator's contract:
// dependency lists, build and run commands for a (language, framework) pair
// always come from here, never from generated content.

var defaultFrameworks = map[schemas.Language]string{
	schemas.LanguagePython:     "fastapi",
	schemas.LanguageRust:       "axum",
	schemas.LanguageGo:         "gin",
	schemas.LanguageTypeScript: "express",
	schemas.LanguageJava:       "spring",
	schemas.LanguageCPP:        "crow",
}

var supportedFrameworks = map[schemas.Language][]string{
	schemas.LanguagePython:     {"fastapi", "flask", "django"},
	schemas.LanguageRust:       {"axum", "warp", "actix"},
	schemas.LanguageGo:         {"gin", "echo", "fiber"},
	schemas.LanguageTypeScript: {"express", "nestjs", "koa"},
	schemas.LanguageJava:       {"spring", "quarkus"},
	schemas.LanguageCPP:        {"crow", "beast"},
}

var mainFilenames = map[schemas.Language]string{
	schemas.LanguagePython:     "main.py",
	schemas.LanguageRust:       "main.rs",
	schemas.LanguageGo:         "main.go",
	schemas.LanguageTypeScript: "index.ts",
	schemas.LanguageJava:       "Main.java",
	schemas.LanguageCPP:        "main.cpp",
}

var frameworkDependencies = map[schemas.Language]map[string][]string{
	schemas.LanguagePython: {
		"fastapi": {"fastapi", "uvicorn", "pydantic"},
		"flask":   {"flask", "flask-cors"},
		"django":  {"django", "djangorestframework"},
	},
	schemas.LanguageRust: {
		"axum": {"axum", "tokio", "serde_json"},
		"warp": {"warp", "tokio", "serde_json"},
	},
	schemas.LanguageGo: {
		"gin":  {"github.com/gin-gonic/gin"},
		"echo": {"github.com/labstack/echo/v4"},
	},
}

var buildCommands = map[schemas.Language][]string{
	schemas.LanguagePython:     {},
	schemas.LanguageRust:       {"cargo build --release"},
	schemas.LanguageGo:         {"go build"},
	schemas.LanguageTypeScript: {"npm run build"},
	schemas.LanguageJava:       {"mvn compile"},
	schemas.LanguageCPP:        {"make"},
}

var runCommands = map[schemas.Language][]string{
	schemas.LanguagePython:     {"python main.py"},
	schemas.LanguageRust:       {"cargo run"},
	schemas.LanguageGo:         {"go run main.go"},
	schemas.LanguageTypeScript: {"npm start"},
	schemas.LanguageJava:       {"java Main"},
	schemas.LanguageCPP:        {"./main"},
}

var defaultPorts = map[schemas.Language]int{
	schemas.LanguagePython:     8000,
	schemas.LanguageRust:       3000,
	schemas.LanguageGo:         8080,
	schemas.LanguageTypeScript: 3000,
	schemas.LanguageJava:       8080,
	schemas.LanguageCPP:        8080,
}

// Dependencies returns the static dependency list for a pair. Unknown pairs
// yield an empty list, not an error.
func Dependencies(lang schemas.Language, framework string) []string {
	deps := frameworkDependencies[lang][framework]
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// BuildCommands returns the static build command list for a language.
func BuildCommands(lang schemas.Language) []string {
	out := make([]string, len(buildCommands[lang]))
	copy(out, buildCommands[lang])
	return out
}

// RunCommands returns the static run command list for a language.
func RunCommands(lang schemas.Language) []string {
	out := make([]string, len(runCommands[lang]))
	copy(out, runCommands[lang])
	return out
}

// DefaultFramework returns the framework substituted when none is requested.
func DefaultFramework(lang schemas.Language) string {
	return defaultFrameworks[lang]
}

// SupportedFrameworks lists the frameworks the generator recognizes for a
// language.
func SupportedFrameworks(lang schemas.Language) []string {
	out := make([]string, len(supportedFrameworks[lang]))
	copy(out, supportedFrameworks[lang])
	return out
}
