package ports

import "github.com/renato0307/muxdeck/internal/domain"

// HostFile reads and writes host definitions for bulk import and export
type HostFile interface {
	Read(path string) ([]domain.HostInput, error)
	Write(path string, hosts []domain.Host) error
}
