package codegen

import (
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// The TypeScript, Java and C++ targets emit a buildable skeleton with
// placeholder module files, mirroring the depth they have always had.

func (g *Generator) emitTypeScript(arch *schemas.Architecture, framework string) map[string]string {
	files := map[string]string{}
	files["package.json"] = `{"name": "generated-app", "version": "1.0.0", "scripts": {"build": "tsc", "start": "node dist/index.js"}}` + "\n"
	files["tsconfig.json"] = `{"compilerOptions": {"target": "ES2020", "outDir": "dist"}}` + "\n"

	switch framework {
	case "express":
		files["index.ts"] = tsExpressMain(arch)
	case "nestjs":
		files["index.ts"] = "// NestJS implementation placeholder\n"
	case "koa":
		files["index.ts"] = "// Koa implementation placeholder\n"
	default:
		files["index.ts"] = tsExpressMain(arch)
	}
	files["models.ts"] = "// Generated data models\n"
	files["services.ts"] = "// Generated service stubs\n"
	files["Dockerfile"] = "FROM node:20\n\nWORKDIR /app\nCOPY . .\nRUN npm install && npm run build\n\nEXPOSE 3000\nCMD [\"npm\", \"start\"]\n"
	files["README.md"] = readme("TypeScript", framework, arch)
	return files
}

func tsExpressMain(arch *schemas.Architecture) string {
	var routes strings.Builder
	for _, c := range apiComponents(arch) {
		lower := strings.ToLower(c.Name)
		routes.WriteString(`
app.get("/` + lower + `", (_req, res) => {
  res.json({ component: "` + c.Name + `", status: "active" });
});
`)
	}

	return `import express from "express";

const app = express();
app.use(express.json());

app.get("/health", (_req, res) => {
  res.json({ status: "healthy", components: [` + quoteJoin(componentNames(arch), `"`, ", ") + `] });
});
` + routes.String() + `
app.listen(3000, () => {
  console.log("Server running on :3000");
});
`
}

func (g *Generator) emitJava(arch *schemas.Architecture, framework string) map[string]string {
	files := map[string]string{}
	switch framework {
	case "spring":
		files["Main.java"] = javaSpringMain(arch)
		files["pom.xml"] = javaPomXML()
	case "quarkus":
		files["Main.java"] = "// Quarkus implementation placeholder\n"
	default:
		files["Main.java"] = javaSpringMain(arch)
		files["pom.xml"] = javaPomXML()
	}
	files["README.md"] = readme("Java", framework, arch)
	return files
}

func javaSpringMain(arch *schemas.Architecture) string {
	return `import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;
import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.RestController;

import java.util.List;
import java.util.Map;

@SpringBootApplication
@RestController
public class Main {

    @GetMapping("/health")
    public Map<String, Object> health() {
        return Map.of(
            "status", "healthy",
            "components", List.of(` + quoteJoin(componentNames(arch), `"`, ", ") + `)
        );
    }

    public static void main(String[] args) {
        SpringApplication.run(Main.class, args);
    }
}
`
}

func javaPomXML() string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.generated</groupId>
  <artifactId>generated-app</artifactId>
  <version>1.0.0</version>
  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>3.2.0</version>
  </parent>
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
  </dependencies>
</project>
`
}

func (g *Generator) emitCPP(arch *schemas.Architecture, framework string) map[string]string {
	files := map[string]string{}
	files["CMakeLists.txt"] = "cmake_minimum_required(VERSION 3.10)\nproject(generated-app)\nadd_executable(main main.cpp)\n"
	switch framework {
	case "crow":
		files["main.cpp"] = cppCrowMain(arch)
	case "beast":
		files["main.cpp"] = "// Beast implementation placeholder\n"
	default:
		files["main.cpp"] = cppCrowMain(arch)
	}
	files["models.hpp"] = "// Generated data models\n"
	files["services.hpp"] = "// Generated service stubs\n"
	files["Dockerfile"] = "FROM gcc:13\n\nWORKDIR /app\nCOPY . .\nRUN make\n\nEXPOSE 8080\nCMD [\"./main\"]\n"
	files["README.md"] = readme("C++", framework, arch)
	return files
}

func cppCrowMain(arch *schemas.Architecture) string {
	return `#include "crow.h"

int main() {
    crow::SimpleApp app;

    CROW_ROUTE(app, "/health")([]() {
        crow::json::wvalue res;
        res["status"] = "healthy";
        return res;
    });

    app.port(8080).multithreaded().run();
    return 0;
}
`
}
