package codegen

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

func (g *Generator) emitRust(arch *schemas.Architecture, framework string) map[string]string {
	files := map[string]string{}

	files["Cargo.toml"] = rustCargoToml(framework)
	switch framework {
	case "axum":
		files["main.rs"] = rustAxumMain(arch)
	case "warp":
		files["main.rs"] = "// Warp implementation placeholder\n"
	case "actix":
		files["main.rs"] = "// Actix implementation placeholder\n"
	default:
		files["main.rs"] = rustAxumMain(arch)
	}
	files["models.rs"] = "// Generated data models\n"
	files["services.rs"] = "// Generated service stubs\n"
	files["config.rs"] = "// Generated configuration\n"
	files["Dockerfile"] = "FROM rust:1.75\n\nWORKDIR /app\nCOPY . .\nRUN cargo build --release\n\nEXPOSE 3000\nCMD [\"./target/release/generated-app\"]\n"
	files["README.md"] = readme("Rust", framework, arch)
	return files
}

func rustCargoToml(framework string) string {
	deps := []string{
		`tokio = { version = "1.0", features = ["full"] }`,
		`serde = { version = "1.0", features = ["derive"] }`,
		`serde_json = "1.0"`,
	}
	switch framework {
	case "axum":
		deps = append(deps, `axum = "0.7"`, `tower = "0.4"`, `hyper = "1.0"`)
	case "warp":
		deps = append(deps, `warp = "0.3"`)
	case "actix":
		deps = append(deps, `actix-web = "4.0"`, `actix-rt = "2.0"`)
	}

	return `[package]
name = "generated-app"
version = "0.1.0"
edition = "2021"

[dependencies]
` + strings.Join(deps, "\n") + "\n"
}

func rustAxumMain(arch *schemas.Architecture) string {
	var handlers, routes strings.Builder
	for _, c := range apiComponents(arch) {
		lower := strings.ToLower(c.Name)
		handlers.WriteString(fmt.Sprintf(`
async fn %s_handler() -> Json<serde_json::Value> {
    Json(serde_json::json!({"component": "%s", "status": "active"}))
}
`, lower, c.Name))
		routes.WriteString(fmt.Sprintf("\n        .route(\"/%s\", get(%s_handler))", lower, lower))
	}

	componentVec := quoteJoin(componentNames(arch), `"`, ".to_string(), ") + `.to_string()`
	if len(arch.Components) == 0 {
		componentVec = ""
	}

	return `use axum::{
    routing::get,
    Json, Router,
};
use serde::Serialize;
use std::net::SocketAddr;

#[derive(Serialize)]
struct HealthResponse {
    status: String,
    components: Vec<String>,
}

async fn health_check() -> Json<HealthResponse> {
    Json(HealthResponse {
        status: "healthy".to_string(),
        components: vec![` + componentVec + `],
    })
}
` + handlers.String() + `
#[tokio::main]
async fn main() {
    let app = Router::new()
        .route("/health", get(health_check))` + routes.String() + `;

    let addr = SocketAddr::from(([0, 0, 0, 0], 3000));
    println!("Server running on http://{addr}");

    let listener = tokio::net::TcpListener::bind(addr).await.unwrap();
    axum::serve(listener, app).await.unwrap();
}
`
}
