// Package info describes the running tool for the admin endpoints
package info

// A Info of the service
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	RunID     string `json:"runId,omitempty"`
}
