package deploy

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// providerFiles returns the deployment descriptor files each provider's
// tooling expects to find at the bundle root.
func providerFiles(cfg schemas.DeploymentConfig) map[string]string {
	switch cfg.Provider {
	case schemas.ProviderAWS:
		return awsFiles()
	case schemas.ProviderGCP:
		return gcpFiles(cfg)
	case schemas.ProviderAzure:
		return azureFiles()
	case schemas.ProviderVercel:
		return vercelFiles()
	case schemas.ProviderNetlify:
		return netlifyFiles()
	case schemas.ProviderRailway:
		return railwayFiles()
	case schemas.ProviderRender:
		return renderFiles()
	default:
		return nil
	}
}

const buildspecYML = `version: 0.2
phases:
  pre_build:
    commands:
      - echo Logging in to Amazon ECR...
      - aws ecr get-login-password --region $AWS_DEFAULT_REGION | docker login --username AWS --password-stdin $AWS_ACCOUNT_ID.dkr.ecr.$AWS_DEFAULT_REGION.amazonaws.com
  build:
    commands:
      - echo Build started on ` + "`date`" + `
      - echo Building the Docker image...
      - docker build -t $IMAGE_REPO_NAME:$IMAGE_TAG .
      - docker tag $IMAGE_REPO_NAME:$IMAGE_TAG $AWS_ACCOUNT_ID.dkr.ecr.$AWS_DEFAULT_REGION.amazonaws.com/$IMAGE_REPO_NAME:$IMAGE_TAG
  post_build:
    commands:
      - echo Build completed on ` + "`date`" + `
      - echo Pushing the Docker image...
      - docker push $AWS_ACCOUNT_ID.dkr.ecr.$AWS_DEFAULT_REGION.amazonaws.com/$IMAGE_REPO_NAME:$IMAGE_TAG
`

func awsFiles() map[string]string {
	taskDef, _ := json.MarshalIndent(struct {
		Family                  string   `json:"family"`
		NetworkMode             string   `json:"networkMode"`
		RequiresCompatibilities []string `json:"requiresCompatibilities"`
		CPU                     string   `json:"cpu"`
		Memory                  string   `json:"memory"`
	}{
		Family:                  "generated-app",
		NetworkMode:             "awsvpc",
		RequiresCompatibilities: []string{"FARGATE"},
		CPU:                     "256",
		Memory:                  "512",
	}, "", "  ")

	return map[string]string{
		"buildspec.yml":        buildspecYML,
		"task-definition.json": string(taskDef),
	}
}

const cloudbuildYAML = `steps:
- name: 'gcr.io/cloud-builders/docker'
  args: ['build', '-t', 'gcr.io/$PROJECT_ID/generated-app', '.']
- name: 'gcr.io/cloud-builders/docker'
  args: ['push', 'gcr.io/$PROJECT_ID/generated-app']
- name: 'gcr.io/cloud-builders/gcloud'
  args: ['run', 'deploy', 'generated-app', '--image', 'gcr.io/$PROJECT_ID/generated-app', '--region', 'us-central1', '--platform', 'managed']
`

func gcpFiles(cfg schemas.DeploymentConfig) map[string]string {
	return map[string]string{
		"cloudbuild.yaml": cloudbuildYAML,
		"app.yaml": fmt.Sprintf(`runtime: python311
service: default
env_variables:
  ENVIRONMENT: %s
`, cfg.Environment),
	}
}

const azurePipelinesYML = `trigger:
- main

pool:
  vmImage: ubuntu-latest

steps:
- task: Docker@2
  inputs:
    containerRegistry: 'docker-registry-connection'
    repository: 'generated-app'
    command: 'buildAndPush'
    Dockerfile: '**/Dockerfile'
`

func azureFiles() map[string]string {
	return map[string]string{"azure-pipelines.yml": azurePipelinesYML}
}

func vercelFiles() map[string]string {
	type build struct {
		Src string `json:"src"`
		Use string `json:"use"`
	}
	type route struct {
		Src  string `json:"src"`
		Dest string `json:"dest"`
	}
	cfg, _ := json.MarshalIndent(struct {
		Version int     `json:"version"`
		Builds  []build `json:"builds"`
		Routes  []route `json:"routes"`
	}{
		Version: 2,
		Builds: []build{
			{Src: "*.py", Use: "@vercel/python"},
			{Src: "*.js", Use: "@vercel/node"},
		},
		Routes: []route{{Src: "/(.*)", Dest: "/"}},
	}, "", "  ")

	return map[string]string{"vercel.json": string(cfg)}
}

const netlifyTOML = `[build]
  command = "npm run build"
  publish = "dist"

[build.environment]
  NODE_VERSION = "18"

[[redirects]]
  from = "/*"
  to = "/index.html"
  status = 200
`

func netlifyFiles() map[string]string {
	return map[string]string{
		"netlify.toml": netlifyTOML,
		"_redirects":   "/*    /index.html   200",
	}
}

func railwayFiles() map[string]string {
	cfg, _ := json.MarshalIndent(struct {
		Build struct {
			Builder string `json:"builder"`
		} `json:"build"`
		Deploy struct {
			StartCommand    string `json:"startCommand"`
			HealthcheckPath string `json:"healthcheckPath"`
		} `json:"deploy"`
	}{
		Build: struct {
			Builder string `json:"builder"`
		}{Builder: "DOCKERFILE"},
		Deploy: struct {
			StartCommand    string `json:"startCommand"`
			HealthcheckPath string `json:"healthcheckPath"`
		}{StartCommand: "python main.py", HealthcheckPath: "/health"},
	}, "", "  ")

	return map[string]string{"railway.json": string(cfg)}
}

const renderYAML = `services:
- type: web
  name: generated-app
  env: python
  buildCommand: pip install -r requirements.txt
  startCommand: python main.py
  envVars:
  - key: PYTHON_VERSION
    value: 3.11.0
`

func renderFiles() map[string]string {
	return map[string]string{"render.yaml": renderYAML}
}
