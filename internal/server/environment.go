package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// AnalyzeEnvironment turns a client-reported environment sample into platform
// optimizations, resource constraints, detected capabilities, and
// recommendations.
func AnalyzeEnvironment(env schemas.EnvironmentData) schemas.EnvironmentReport {
	return schemas.EnvironmentReport{
		PlatformOptimization: platformOptimizations(env),
		ResourceConstraints:  resourceConstraints(env),
		CapabilityDetection:  detectCapabilities(env),
		Recommendations:      recommendations(env),
	}
}

func platformOptimizations(env schemas.EnvironmentData) []string {
	platform := strings.ToLower(env.Platform)
	optimizations := []string{}
	switch {
	case strings.Contains(platform, "mac"):
		optimizations = append(optimizations, "Safari optimization", "macOS native feel", "Retina display support")
	case strings.Contains(platform, "win"):
		optimizations = append(optimizations, "Edge compatibility", "Windows UI patterns", "High DPI support")
	case strings.Contains(platform, "linux"):
		optimizations = append(optimizations, "Firefox optimization", "GTK themes", "Accessibility features")
	}
	return optimizations
}

func resourceConstraints(env schemas.EnvironmentData) map[string]string {
	memory := "Unknown"
	if env.Memory > 0 {
		memory = strconv.FormatFloat(env.Memory, 'f', -1, 64)
	}
	cores := "Unknown"
	if env.Cores > 0 {
		cores = strconv.Itoa(env.Cores)
	}

	storage := "Limited storage"
	if env.LocalStorage {
		storage = "localStorage available"
	}
	network := "Offline-first recommended"
	if env.ServiceWorker {
		network = "Online capabilities detected"
	}

	return map[string]string{
		"memory":  fmt.Sprintf("%s GB available", memory),
		"cores":   fmt.Sprintf("%s CPU cores", cores),
		"storage": storage,
		"network": network,
	}
}

func detectCapabilities(env schemas.EnvironmentData) []string {
	capabilities := []string{}
	if env.WebGL {
		capabilities = append(capabilities, "WebGL graphics support")
	}
	if env.ServiceWorker {
		capabilities = append(capabilities, "Service Worker (PWA capable)")
	}
	if env.PushNotifications {
		capabilities = append(capabilities, "Push notifications")
	}
	if env.Geolocation {
		capabilities = append(capabilities, "Geolocation services")
	}
	if env.LocalStorage {
		capabilities = append(capabilities, "Local storage persistence")
	}
	return capabilities
}

func recommendations(env schemas.EnvironmentData) []string {
	recs := []string{}

	if width := screenWidth(env.Screen); width > 0 {
		if width < 768 {
			recs = append(recs, "Mobile-first responsive design")
		} else if width > 1920 {
			recs = append(recs, "High-resolution display optimization")
		}
	}
	if env.Memory < 4 {
		recs = append(recs, "Lightweight implementation recommended")
	}
	if !env.ServiceWorker {
		recs = append(recs, "Consider offline-first architecture")
	}
	return recs
}

// screenWidth parses the width out of a "1920x1080" style string. A missing
// or malformed value yields the default desktop width.
func screenWidth(screen string) int {
	if screen == "" {
		return 1920
	}
	widthPart, _, _ := strings.Cut(screen, "x")
	width, err := strconv.Atoi(strings.TrimSpace(widthPart))
	if err != nil {
		return 1920
	}
	return width
}
