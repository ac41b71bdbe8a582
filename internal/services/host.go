package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// HostService manages the backend's remote host list
type HostService struct {
	hostFile   ports.HostFile
	hostReader ports.HostReader
	hostWriter ports.HostWriter
}

// NewHostService creates a new HostService. hostFile may be nil when
// import and export are not needed.
func NewHostService(hostReader ports.HostReader, hostWriter ports.HostWriter, hostFile ports.HostFile) *HostService {
	return &HostService{
		hostFile:   hostFile,
		hostReader: hostReader,
		hostWriter: hostWriter,
	}
}

// ListHosts returns the configured remote hosts
func (s *HostService) ListHosts(ctx context.Context) ([]domain.Host, error) {
	return s.hostReader.ListHosts(ctx)
}

// GetHost returns one host by id
func (s *HostService) GetHost(ctx context.Context, id string) (domain.Host, error) {
	hosts, err := s.hostReader.ListHosts(ctx)
	if err != nil {
		return domain.Host{}, err
	}
	for _, h := range hosts {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Host{}, fmt.Errorf("%w: %s", domain.ErrHostNotFound, id)
}

// AddHost validates and adds a host. Port defaults to 22 and the name to the hostname.
func (s *HostService) AddHost(ctx context.Context, in domain.HostInput) (domain.Host, error) {
	in, err := validate(in)
	if err != nil {
		return domain.Host{}, err
	}

	logging.Logger.Info("Adding host", "hostname", in.Hostname, "port", in.Port)
	host, err := s.hostWriter.AddHost(ctx, in)
	if err != nil {
		logging.Logger.Error("Failed to add host", "hostname", in.Hostname, "error", err)
		return domain.Host{}, err
	}
	return host, nil
}

// UpdateHost replaces the host's settings
func (s *HostService) UpdateHost(ctx context.Context, id string, in domain.HostInput) error {
	in, err := validate(in)
	if err != nil {
		return err
	}

	logging.Logger.Info("Updating host", "id", id, "hostname", in.Hostname)
	if err := s.hostWriter.UpdateHost(ctx, id, in); err != nil {
		logging.Logger.Error("Failed to update host", "id", id, "error", err)
		return err
	}
	return nil
}

// SetEnabled toggles whether the backend queries the host
func (s *HostService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	host, err := s.GetHost(ctx, id)
	if err != nil {
		return err
	}
	return s.UpdateHost(ctx, id, domain.HostInput{
		Enabled:  enabled,
		Hostname: host.Hostname,
		Name:     host.Name,
		Port:     host.Port,
		Username: host.Username,
	})
}

// DeleteHost removes the host. Its sessions disappear from the next list.
func (s *HostService) DeleteHost(ctx context.Context, id string) error {
	if id == domain.LocalHostID {
		return fmt.Errorf("the local host cannot be deleted")
	}

	logging.Logger.Info("Deleting host", "id", id)
	if err := s.hostWriter.DeleteHost(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete host", "id", id, "error", err)
		return err
	}
	return nil
}

// ImportHosts adds every host in the file that is not configured yet.
// Hosts match on hostname, port and username. One failure does not stop the rest.
func (s *HostService) ImportHosts(ctx context.Context, path string) (ImportResult, error) {
	if s.hostFile == nil {
		return ImportResult{}, fmt.Errorf("host file support is not configured")
	}

	inputs, err := s.hostFile.Read(path)
	if err != nil {
		return ImportResult{}, err
	}
	existing, err := s.hostReader.ListHosts(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		seen[identity(h.Hostname, h.Port, h.Username)] = true
	}

	result := ImportResult{Failed: map[string]error{}}
	for _, in := range inputs {
		id := identity(in.Hostname, in.Port, in.Username)
		if seen[id] {
			result.Skipped = append(result.Skipped, in.Hostname)
			continue
		}
		host, err := s.AddHost(ctx, in)
		if err != nil {
			result.Failed[in.Hostname] = err
			continue
		}
		seen[id] = true
		result.Added = append(result.Added, host)
	}

	logging.Logger.Info("Hosts imported",
		"path", path,
		"added", len(result.Added),
		"skipped", len(result.Skipped),
		"failed", len(result.Failed))
	return result, nil
}

// ExportHosts writes the configured hosts to path and returns how many were written
func (s *HostService) ExportHosts(ctx context.Context, path string) (int, error) {
	if s.hostFile == nil {
		return 0, fmt.Errorf("host file support is not configured")
	}

	hosts, err := s.hostReader.ListHosts(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.hostFile.Write(path, hosts); err != nil {
		return 0, err
	}
	return len(hosts), nil
}

func validate(in domain.HostInput) (domain.HostInput, error) {
	in.Hostname = strings.TrimSpace(in.Hostname)
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	if in.Hostname == "" {
		return in, fmt.Errorf("hostname is required")
	}
	if in.Port < 0 || in.Port > 65535 {
		return in, fmt.Errorf("invalid port %d", in.Port)
	}
	return in.Normalize(), nil
}

func identity(hostname string, port int, username string) string {
	if port == 0 {
		port = domain.DefaultSSHPort
	}
	return fmt.Sprintf("%s@%s:%d", strings.ToLower(username), strings.ToLower(hostname), port)
}
