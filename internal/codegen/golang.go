package codegen

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

func (g *Generator) emitGo(arch *schemas.Architecture, framework string) map[string]string {
	files := map[string]string{}

	files["go.mod"] = "module generated-app\n\ngo 1.22\n"
	switch framework {
	case "gin":
		files["main.go"] = goGinMain(arch)
	case "echo":
		files["main.go"] = "// Echo implementation placeholder\n"
	case "fiber":
		files["main.go"] = "// Fiber implementation placeholder\n"
	default:
		files["main.go"] = goGinMain(arch)
	}
	files["models.go"] = "package main\n\n// Generated data models\n"
	files["services.go"] = "package main\n\n// Generated service stubs\n"
	files["Dockerfile"] = "FROM golang:1.22\n\nWORKDIR /app\nCOPY . .\nRUN go build -o app .\n\nEXPOSE 8080\nCMD [\"./app\"]\n"
	files["README.md"] = readme("Go", framework, arch)
	return files
}

func goGinMain(arch *schemas.Architecture) string {
	var handlers, routes strings.Builder
	for _, c := range apiComponents(arch) {
		lower := strings.ToLower(c.Name)
		handlers.WriteString(fmt.Sprintf(`
func %sHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"component": "%s",
		"status":    "active",
	})
}
`, lower, c.Name))
		routes.WriteString(fmt.Sprintf("\tr.GET(\"/%s\", %sHandler)\n", lower, lower))
	}

	return `package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status     string   ` + "`json:\"status\"`" + `
	Components []string ` + "`json:\"components\"`" + `
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Components: []string{` + quoteJoin(componentNames(arch), `"`, ", ") + `},
	})
}
` + handlers.String() + `
func main() {
	r := gin.Default()

	r.GET("/health", healthCheck)
` + routes.String() + `
	r.Run(":8080")
}
`
}
