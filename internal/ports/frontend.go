package ports

// Frontend defines the interface for a scan frontend
type Frontend interface {
	// Start starts serving scans
	Start() error

	// Stop stops the frontend
	Stop() error
}
