package schemas

import (
	"strings"
	"time"
)

// Provider identifies a cloud deployment target.
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderGCP     Provider = "gcp"
	ProviderAzure   Provider = "azure"
	ProviderVercel  Provider = "vercel"
	ProviderNetlify Provider = "netlify"
	ProviderRailway Provider = "railway"
	ProviderRender  Provider = "render"
)

// SupportedProviders lists every deployment target.
func SupportedProviders() []Provider {
	return []Provider{
		ProviderAWS, ProviderGCP, ProviderAzure,
		ProviderVercel, ProviderNetlify, ProviderRailway, ProviderRender,
	}
}

// ParseProvider normalizes a user-supplied provider name.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SupportedProviders() {
		if p == known {
			return p, nil
		}
	}
	return "", &UnsupportedProviderError{Provider: s}
}

// DeploymentConfig describes one requested deployment. Region and Environment
// apply to every provider; ProjectID is GCP-specific and ResourceGroup is
// Azure-specific.
type DeploymentConfig struct {
	Provider             Provider               `json:"provider"`
	Region               string                 `json:"region"`
	ProjectID            string                 `json:"project_id,omitempty"`
	ResourceGroup        string                 `json:"resource_group,omitempty"`
	Environment          string                 `json:"environment"`
	ServiceType          string                 `json:"service_type,omitempty"`
	Credentials          map[string]string      `json:"credentials,omitempty"`
	EnvironmentVariables map[string]string      `json:"environment_variables,omitempty"`
	ScalingConfig        map[string]interface{} `json:"scaling_config,omitempty"`
}

// WithDefaults fills the zero-value fields every provider path expects.
func (c DeploymentConfig) WithDefaults() DeploymentConfig {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.Environment == "" {
		c.Environment = "production"
	}
	return c
}

// DeploymentResult is the outcome record of one deployment attempt. Provider
// failures are folded into Success=false with the message in Error; nothing
// inside the deployment engine escapes as a Go error.
type DeploymentResult struct {
	Success      bool                   `json:"success"`
	URL          string                 `json:"url,omitempty"`
	DeploymentID string                 `json:"deployment_id,omitempty"`
	Logs         []string               `json:"logs,omitempty"`
	Error        string                 `json:"error,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// DeploymentStatus is a point-in-time status snapshot for a deployment.
type DeploymentStatus struct {
	DeploymentID string    `json:"deployment_id"`
	Provider     Provider  `json:"provider"`
	Status       string    `json:"status"`
	URL          string    `json:"url,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}
