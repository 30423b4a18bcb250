package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/localnerve/qadesk/internal/config"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	DataDir      string            `json:"dataDir"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck verifies that the data directory exists and is writable and
// that the present store files are readable.
func HealthCheck(cfg *config.Config) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		DataDir: cfg.DataDir,
		Details: make(map[string]string),
	}

	if err := checkWritable(cfg.DataDir); err != nil {
		result.Status = "unhealthy"
		result.Details["data_dir_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Data directory not writable: %v", err)
		log.Printf("Health check failed - data directory: %v", err)
		return result
	}
	result.Details["data_dir"] = "ok"

	stores := map[string]string{
		"components":   cfg.StorePath(cfg.ComponentsFile),
		"audits":       cfg.StorePath(cfg.AuditsFile),
		"certificates": cfg.StorePath(cfg.CertificatesFile),
		"suppliers":    cfg.StorePath(cfg.SuppliersFile),
		"users":        cfg.StorePath(cfg.UsersFile),
	}
	for name, path := range stores {
		if err := checkReadable(path); err != nil {
			result.Status = "unhealthy"
			result.Details[name] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Store %s unreadable: %v", name, err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; store %s unreadable: %v", name, err)
			}
			log.Printf("Health check failed - store %s: %v", name, err)
		} else {
			result.Details[name] = "ok"
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all stores readable")
	}
	return result
}

// checkWritable probes the directory with a throwaway temp file.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}

// checkReadable verifies the file can be opened when it exists. A missing
// store is healthy; it reads as empty.
func checkReadable(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return f.Close()
}
