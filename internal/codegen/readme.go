package codegen

import (
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

var devCommands = map[string]string{
	"Python":     "pip install -r requirements.txt && python main.py",
	"Rust":       "cargo run",
	"Go":         "go run main.go",
	"TypeScript": "npm install && npm start",
	"Java":       "mvn compile && java Main",
	"C++":        "make && ./main",
}

func readme(language, framework string, arch *schemas.Architecture) string {
	var b strings.Builder
	b.WriteString("# Generated " + language + " Application\n\n")
	b.WriteString("This application skeleton was generated from an inferred architecture.\n\n")
	b.WriteString("## Architecture\n\n")
	b.WriteString("**Language**: " + language + "\n")
	b.WriteString("**Framework**: " + framework + "\n")
	b.WriteString("**Components**: " + strings.Join(componentNames(arch), ", ") + "\n")
	b.WriteString("**Patterns**: " + strings.Join(arch.Patterns, ", ") + "\n\n")
	b.WriteString("## Quick Start\n\n```bash\n" + devCommands[language] + "\n```\n\n")
	b.WriteString("### Docker\n\n```bash\ndocker build -t generated-app .\ndocker run -p 8000:8000 generated-app\n```\n\n")
	b.WriteString("## API Endpoints\n\n- `GET /health` - Health check\n")
	for _, c := range apiComponents(arch) {
		b.WriteString("- `GET /" + strings.ToLower(c.Name) + "` - " + c.Name + " operations\n")
	}
	return b.String()
}
