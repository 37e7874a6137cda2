package codegen

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

func (g *Generator) emitPython(arch *schemas.Architecture, framework string) map[string]string {
	files := map[string]string{}

	switch framework {
	case "fastapi":
		files["main.py"] = pythonFastAPIMain(arch)
	case "flask":
		files["main.py"] = "# Flask implementation placeholder\n"
	case "django":
		files["main.py"] = "# Django implementation placeholder\n"
	default:
		files["main.py"] = pythonFastAPIMain(arch)
	}

	files["models.py"] = pythonModels(arch)
	files["services.py"] = pythonServices(arch)
	files["config.py"] = pythonConfig()
	files["requirements.txt"] = strings.Join(Dependencies(schemas.LanguagePython, framework), "\n") + "\n"
	files["Dockerfile"] = pythonDockerfile()
	files["README.md"] = readme("Python", framework, arch)
	return files
}

func pythonFastAPIMain(arch *schemas.Architecture) string {
	var b strings.Builder
	b.WriteString(`from fastapi import FastAPI, HTTPException
from pydantic import BaseModel
from typing import List, Optional
import uvicorn

from models import HealthResponse
from services import HealthService
from config import settings

app = FastAPI(
    title="Generated Application",
    description="Auto-generated application skeleton",
    version="1.0.0",
)


@app.get("/health")
async def health_check():
    return {"status": "healthy", "components": [` + quoteJoin(componentNames(arch), `"`, ", ") + `]}
`)

	for _, c := range apiComponents(arch) {
		route := strings.ToLower(c.Name)
		b.WriteString(fmt.Sprintf(`

@app.get("/%s")
async def get_%s():
    return {"component": "%s", "status": "active"}


@app.post("/%s")
async def post_%s(data: dict):
    if not isinstance(data, dict) or not data:
        raise HTTPException(status_code=400, detail="Invalid data")
    return {"processed": True, "component": "%s", "data": data}
`, route, route, c.Name, route, route, c.Name))
	}

	b.WriteString(`

if __name__ == "__main__":
    uvicorn.run(app, host="0.0.0.0", port=8000)
`)
	return b.String()
}

func pythonModels(arch *schemas.Architecture) string {
	var models []string
	for _, c := range arch.Components {
		lower := strings.ToLower(c.Name)
		if strings.Contains(lower, "data") || strings.Contains(lower, "model") {
			models = append(models, fmt.Sprintf(`

class %sModel(BaseModel):
    id: Optional[int] = None
    name: str
    created_at: Optional[str] = None

    class Config:
        from_attributes = True
`, c.Name))
		}
	}

	body := "# No specific models generated"
	if len(models) > 0 {
		body = strings.Join(models, "")
	}
	return `from pydantic import BaseModel
from typing import Optional, List

` + body + `


class HealthResponse(BaseModel):
    status: str
    components: List[str]
`
}

func pythonServices(arch *schemas.Architecture) string {
	var services []string
	for _, c := range arch.Components {
		lower := strings.ToLower(c.Name)
		if strings.Contains(lower, "service") || strings.Contains(lower, "logic") {
			services = append(services, fmt.Sprintf(`

class %sService:
    def __init__(self):
        self.initialized = True

    async def process(self, data: dict) -> dict:
        return {"processed": True, "component": "%s", "data": data}

    async def validate(self, data: dict) -> bool:
        return isinstance(data, dict) and len(data) > 0
`, c.Name, c.Name))
		}
	}

	body := "# No specific services generated"
	if len(services) > 0 {
		body = strings.Join(services, "")
	}
	return `from datetime import datetime
from typing import Dict, Any

` + body + `


class HealthService:
    @staticmethod
    async def check_system_health() -> Dict[str, Any]:
        return {"status": "healthy", "timestamp": str(datetime.now())}
`
}

func pythonConfig() string {
	return `import os
from pydantic_settings import BaseSettings


class Settings(BaseSettings):
    app_name: str = "Generated Application"
    debug: bool = False
    host: str = "0.0.0.0"
    port: int = 8000

    class Config:
        env_file = ".env"


settings = Settings()
`
}

func pythonDockerfile() string {
	return `FROM python:3.11-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 8000

CMD ["python", "main.py"]
`
}
