package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// bundle is a deployment package staged on disk: the generated files plus the
// provider-specific config files, all written under a fresh temp directory.
type bundle struct {
	dir   string
	files map[string]string
}

// prepare stages the artifact for the configured provider. The caller owns
// the returned directory and removes it when the deployment finishes.
func prepare(files map[string]string, cfg schemas.DeploymentConfig) (*bundle, error) {
	dir, err := os.MkdirTemp("", "reify-deploy-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}

	merged := make(map[string]string, len(files)+4)
	for path, content := range files {
		merged[path] = content
	}
	for path, content := range providerFiles(cfg) {
		merged[path] = content
	}

	for path, content := range merged {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			os.RemoveAll(dir)
			return nil, fmt.Errorf("staging %s: %w", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			os.RemoveAll(dir)
			return nil, fmt.Errorf("staging %s: %w", path, err)
		}
	}

	return &bundle{dir: dir, files: merged}, nil
}

func (b *bundle) cleanup() {
	if b != nil && b.dir != "" {
		os.RemoveAll(b.dir)
	}
}

func (b *bundle) hasFile(name string) bool {
	_, ok := b.files[name]
	return ok
}
