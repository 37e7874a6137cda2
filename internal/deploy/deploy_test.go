package deploy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

type fakeCall struct {
	dir  string
	name string
	args []string
}

// fakeRunner replays canned CLI output and records every invocation.
type fakeRunner struct {
	calls  []fakeCall
	stdout map[string]string
	stderr map[string]string
	errs   map[string]error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	f.calls = append(f.calls, fakeCall{dir: dir, name: name, args: args})
	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}
	return f.stdout[key], f.stderr[key], f.errs[key]
}

func newTestEngine(runner CommandRunner) *Engine {
	return NewEngine(zap.NewNop(), runner)
}

func containerCode() *schemas.GeneratedCode {
	return &schemas.GeneratedCode{
		Language:   schemas.LanguagePython,
		Framework:  "fastapi",
		Files:      map[string]string{"main.py": "print('ok')", "Dockerfile": "FROM python:3.11"},
		EntryPoint: "main.py",
	}
}

func TestDeployUnsupportedProvider(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{Provider: "unknown"})

	assert.False(t, result.Success)
	assert.Equal(t, "Unsupported provider: unknown", result.Error)
	assert.Empty(t, result.URL)
}

func TestDeployNoFiles(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})

	result := engine.Deploy(context.Background(), nil, schemas.DeploymentConfig{Provider: schemas.ProviderAWS})

	assert.False(t, result.Success)
	assert.Equal(t, "no files to deploy", result.Error)
}

func TestDeployAWSECS(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
		Provider: schemas.ProviderAWS,
		Region:   "eu-west-1",
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "https://generated-app-eu-west-1.elb.amazonaws.com", result.URL)
	assert.Contains(t, result.DeploymentID, "arn:aws:ecs:eu-west-1:")
	assert.Equal(t, "ecs", result.Metadata["service"])
}

func TestDeployAWSLambda(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})
	code := &schemas.GeneratedCode{
		Language:   schemas.LanguagePython,
		Files:      map[string]string{"lambda_function.py": "def handler(): pass"},
		EntryPoint: "lambda_function.py",
	}

	result := engine.Deploy(context.Background(), code, schemas.DeploymentConfig{Provider: schemas.ProviderAWS})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "lambda", result.Metadata["service"])
	assert.Contains(t, result.DeploymentID, "function:generated-app-function")
	assert.Equal(t, "https://api-us-east-1.execute-api.amazonaws.com/prod", result.URL)
}

func TestDeployAWSAppRunnerFallback(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})
	code := &schemas.GeneratedCode{
		Language:   schemas.LanguagePython,
		Files:      map[string]string{"main.py": "print('ok')"},
		EntryPoint: "main.py",
	}

	result := engine.Deploy(context.Background(), code, schemas.DeploymentConfig{Provider: schemas.ProviderAWS})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "https://generated-app.apprunner.aws", result.URL)
	assert.Equal(t, "app_runner", result.Metadata["service"])
}

func TestDeployGCP(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})

	t.Run("requires project id", func(t *testing.T) {
		result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
			Provider: schemas.ProviderGCP,
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "project_id is required")
	})

	t.Run("cloud run for containerized artifacts", func(t *testing.T) {
		result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
			Provider:  schemas.ProviderGCP,
			Region:    "us-central1",
			ProjectID: "demo-project",
		})
		require.True(t, result.Success, result.Error)
		assert.Equal(t, "https://generated-app-demo-project.a.run.app", result.URL)
		assert.Equal(t, "projects/demo-project/locations/us-central1/services/generated-app", result.DeploymentID)
		assert.Equal(t, "cloud_run", result.Metadata["service"])
	})

	t.Run("app engine without dockerfile", func(t *testing.T) {
		code := &schemas.GeneratedCode{
			Language:   schemas.LanguagePython,
			Files:      map[string]string{"main.py": "print('ok')"},
			EntryPoint: "main.py",
		}
		result := engine.Deploy(context.Background(), code, schemas.DeploymentConfig{
			Provider:  schemas.ProviderGCP,
			ProjectID: "demo-project",
		})
		require.True(t, result.Success, result.Error)
		assert.Equal(t, "https://demo-project.appspot.com", result.URL)
		assert.Equal(t, "app_engine", result.Metadata["service"])
	})
}

func TestDeployAzure(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})

	t.Run("requires subscription credential", func(t *testing.T) {
		result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
			Provider: schemas.ProviderAzure,
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "subscription_id")
	})

	t.Run("container instance", func(t *testing.T) {
		result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
			Provider:      schemas.ProviderAzure,
			Region:        "westeurope",
			ResourceGroup: "demo-rg",
			Credentials:   map[string]string{"subscription_id": "sub-123"},
		})
		require.True(t, result.Success, result.Error)
		assert.Equal(t, "http://generated-app-container.westeurope.azurecontainer.io", result.URL)
		assert.Equal(t, "generated-app-container", result.DeploymentID)
	})
}

func TestDeployVercel(t *testing.T) {
	runner := &fakeRunner{
		stdout: map[string]string{
			"vercel deploy": "Deploying...\nInspect: https://vercel.com/acme/app\nhttps://generated-app.vercel.app\n",
		},
	}
	engine := newTestEngine(runner)

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
		Provider: schemas.ProviderVercel,
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "https://generated-app.vercel.app", result.URL)
	assert.Equal(t, "generated-app", result.DeploymentID)

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "vercel", call.name)
	require.Len(t, call.args, 4)
	assert.Equal(t, "deploy", call.args[0])
	assert.Equal(t, []string{"--prod", "--yes"}, call.args[2:])
	assert.NotEmpty(t, call.args[1])
}

func TestDeployVercelFailure(t *testing.T) {
	runner := &fakeRunner{
		stdout: map[string]string{"vercel deploy": "some progress output"},
		stderr: map[string]string{"vercel deploy": "Error: not authenticated"},
		errs:   map[string]error{"vercel deploy": errors.New("exit status 1")},
	}
	engine := newTestEngine(runner)

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
		Provider: schemas.ProviderVercel,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Vercel deployment failed: Error: not authenticated", result.Error)
	assert.Equal(t, []string{"some progress output"}, result.Logs)
}

func TestDeployNetlify(t *testing.T) {
	runner := &fakeRunner{
		stdout: map[string]string{
			"netlify deploy": "Deploy path: /tmp/x\nWebsite URL: https://generated-app.netlify.app\n",
		},
	}
	engine := newTestEngine(runner)

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
		Provider: schemas.ProviderNetlify,
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "https://generated-app.netlify.app", result.URL)
	assert.Equal(t, "generated-app", result.DeploymentID)
}

func TestDeployRailway(t *testing.T) {
	runner := &fakeRunner{
		stdout: map[string]string{
			"railway up":     "Build started\n",
			"railway domain": "https://generated-app.up.railway.app\n",
		},
	}
	engine := newTestEngine(runner)

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
		Provider: schemas.ProviderRailway,
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "https://generated-app.up.railway.app", result.URL)
	assert.Equal(t, "railway-deployment", result.DeploymentID)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, runner.calls[0].dir, runner.calls[1].dir)
	assert.NotEmpty(t, runner.calls[0].dir)
}

func TestDeployRender(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})

	result := engine.Deploy(context.Background(), containerCode(), schemas.DeploymentConfig{
		Provider: schemas.ProviderRender,
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, "https://generated-app.onrender.com", result.URL)
	assert.Equal(t, "render-service-id", result.DeploymentID)
}

func TestStatusUpdateDelete(t *testing.T) {
	engine := newTestEngine(&fakeRunner{})
	ctx := context.Background()

	status := engine.Status(ctx, "render-service-id")
	assert.Equal(t, "render-service-id", status.DeploymentID)
	assert.Equal(t, "running", status.Status)
	assert.False(t, status.CheckedAt.IsZero())

	update := engine.Update(ctx, "render-service-id", map[string]string{"main.py": "print('v2')"})
	assert.True(t, update.Success)
	assert.Equal(t, []string{"Deployment updated successfully"}, update.Logs)

	assert.False(t, engine.Update(ctx, "", nil).Success)
	assert.True(t, engine.Delete(ctx, "render-service-id"))
	assert.False(t, engine.Delete(ctx, ""))
}

func TestPrepareStagesProviderFiles(t *testing.T) {
	b, err := prepare(map[string]string{"main.py": "print('ok')"}, schemas.DeploymentConfig{
		Provider:    schemas.ProviderNetlify,
		Environment: "production",
	})
	require.NoError(t, err)
	defer b.cleanup()

	for _, name := range []string{"main.py", "netlify.toml", "_redirects"} {
		assert.True(t, b.hasFile(name), name)
		_, statErr := os.Stat(filepath.Join(b.dir, name))
		assert.NoError(t, statErr, name)
	}
}

func TestProviderFilesPerProvider(t *testing.T) {
	cfg := schemas.DeploymentConfig{Environment: "production"}

	cases := map[schemas.Provider][]string{
		schemas.ProviderAWS:     {"buildspec.yml", "task-definition.json"},
		schemas.ProviderGCP:     {"cloudbuild.yaml", "app.yaml"},
		schemas.ProviderAzure:   {"azure-pipelines.yml"},
		schemas.ProviderVercel:  {"vercel.json"},
		schemas.ProviderNetlify: {"netlify.toml", "_redirects"},
		schemas.ProviderRailway: {"railway.json"},
		schemas.ProviderRender:  {"render.yaml"},
	}
	for provider, want := range cases {
		cfg.Provider = provider
		files := providerFiles(cfg)
		assert.Len(t, files, len(want), provider)
		for _, name := range want {
			assert.Contains(t, files, name, provider)
		}
	}

	gcp := gcpFiles(schemas.DeploymentConfig{Environment: "staging"})
	assert.Contains(t, gcp["app.yaml"], "ENVIRONMENT: staging")
}
