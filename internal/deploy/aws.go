package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// AWS has three service targets. Containerized artifacts go to ECS Fargate,
// artifacts with a lambda entry go to Lambda, everything else goes to App
// Runner. The control-plane calls are described but not issued; the result
// carries the descriptors a real rollout would submit.
func (e *Engine) deployAWS(ctx context.Context, b *bundle, cfg schemas.DeploymentConfig) schemas.DeploymentResult {
	if err := ctx.Err(); err != nil {
		return failure(fmt.Sprintf("AWS deployment failed: %s", err))
	}

	switch {
	case b.hasFile("Dockerfile"):
		return e.deployAWSECS(cfg)
	case hasLambdaFile(b):
		return e.deployAWSLambda(cfg)
	default:
		return e.deployAWSAppRunner()
	}
}

func hasLambdaFile(b *bundle) bool {
	for name := range b.files {
		if strings.Contains(strings.ToLower(name), "lambda") {
			return true
		}
	}
	return false
}

func (e *Engine) deployAWSECS(cfg schemas.DeploymentConfig) schemas.DeploymentResult {
	imageURI := fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com/generated-app:latest", awsAccountID(cfg), cfg.Region)
	serviceARN := fmt.Sprintf("arn:aws:ecs:%s:%s:service/default/generated-app-service", cfg.Region, awsAccountID(cfg))

	taskDefinition := map[string]interface{}{
		"family":                  "generated-app",
		"networkMode":             "awsvpc",
		"requiresCompatibilities": []string{"FARGATE"},
		"cpu":                     "256",
		"memory":                  "512",
		"executionRoleArn":        "arn:aws:iam::123456789:role/ecsTaskExecutionRole",
		"containerDefinitions": []map[string]interface{}{
			{
				"name":  "app",
				"image": imageURI,
				"portMappings": []map[string]interface{}{
					{"containerPort": 8000, "protocol": "tcp"},
				},
				"essential": true,
			},
		},
	}
	networkConfiguration := map[string]interface{}{
		"subnets":        []string{"subnet-12345", "subnet-67890"},
		"securityGroups": []string{"sg-12345"},
		"assignPublicIp": "ENABLED",
	}

	return schemas.DeploymentResult{
		Success:      true,
		URL:          fmt.Sprintf("https://generated-app-%s.elb.amazonaws.com", cfg.Region),
		DeploymentID: serviceARN,
		Logs:         []string{"ECS service created successfully"},
		Metadata: map[string]interface{}{
			"provider":              "aws",
			"service":               "ecs",
			"task_definition":       taskDefinition,
			"network_configuration": networkConfiguration,
			"image":                 imageURI,
		},
	}
}

func (e *Engine) deployAWSLambda(cfg schemas.DeploymentConfig) schemas.DeploymentResult {
	functionARN := fmt.Sprintf("arn:aws:lambda:%s:%s:function:generated-app-function", cfg.Region, awsAccountID(cfg))

	functionSpec := map[string]interface{}{
		"FunctionName": "generated-app-function",
		"Runtime":      "python3.11",
		"Role":         "arn:aws:iam::123456789:role/lambda-execution-role",
		"Handler":      "main.handler",
		"Timeout":      30,
		"MemorySize":   256,
		"Environment":  map[string]string{"ENVIRONMENT": cfg.Environment},
	}

	return schemas.DeploymentResult{
		Success:      true,
		URL:          fmt.Sprintf("https://api-%s.execute-api.amazonaws.com/prod", cfg.Region),
		DeploymentID: functionARN,
		Logs:         []string{"Lambda function created successfully"},
		Metadata: map[string]interface{}{
			"provider":      "aws",
			"service":       "lambda",
			"function_arn":  functionARN,
			"function_spec": functionSpec,
		},
	}
}

func (e *Engine) deployAWSAppRunner() schemas.DeploymentResult {
	return schemas.DeploymentResult{
		Success:      true,
		URL:          "https://generated-app.apprunner.aws",
		DeploymentID: "app-runner-service-id",
		Logs:         []string{"App Runner service created"},
		Metadata:     map[string]interface{}{"provider": "aws", "service": "app_runner"},
	}
}

func awsAccountID(cfg schemas.DeploymentConfig) string {
	if id, ok := cfg.Credentials["account_id"]; ok && id != "" {
		return id
	}
	return "123456789"
}
