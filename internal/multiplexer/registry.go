package multiplexer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// Resource is a live terminal for one session
type Resource struct {
	Key        domain.SessionKey
	Surface    ports.Surface
	TerminalID string
}

// Registry maps session keys to their terminal resources.
// At most one resource is visible; switching always hides the old one
// before showing the new one.
type Registry struct {
	resources map[domain.SessionKey]*Resource
	scale     float64
	visible   domain.SessionKey
}

// NewRegistry creates an empty registry that scales new surfaces by scale
func NewRegistry(scale float64) *Registry {
	return &Registry{
		resources: make(map[domain.SessionKey]*Resource),
		scale:     scale,
	}
}

// Has reports whether key has a resource
func (r *Registry) Has(key domain.SessionKey) bool {
	_, ok := r.resources[key]
	return ok
}

// Get returns the resource for key
func (r *Registry) Get(key domain.SessionKey) (*Resource, bool) {
	res, ok := r.resources[key]
	return res, ok
}

// Len returns the number of registered resources
func (r *Registry) Len() int {
	return len(r.resources)
}

// Keys returns registered keys sorted by host then name
func (r *Registry) Keys() []domain.SessionKey {
	keys := make([]domain.SessionKey, 0, len(r.resources))
	for k := range r.resources {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].HostID != keys[j].HostID {
			return keys[i].HostID < keys[j].HostID
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}

// Visible returns the key of the visible resource, if any
func (r *Registry) Visible() (domain.SessionKey, bool) {
	if r.visible.IsZero() {
		return domain.SessionKey{}, false
	}
	return r.visible, true
}

// Register inserts res hidden and scaled to the current factor.
// It returns false and leaves the registry untouched when the key is taken.
func (r *Registry) Register(res *Resource) bool {
	if _, exists := r.resources[res.Key]; exists {
		logging.Logger.Debug("Resource already registered", "key", res.Key.String())
		return false
	}
	res.Surface.SetScale(r.scale)
	res.Surface.Hide()
	r.resources[res.Key] = res
	logging.Logger.Debug("Resource registered",
		"key", res.Key.String(),
		"terminal_id", res.TerminalID,
		"address", res.Surface.Address().String())
	return true
}

// Show makes key the visible resource, hiding the previous one first.
// It returns false when key is not registered.
func (r *Registry) Show(key domain.SessionKey) bool {
	res, ok := r.resources[key]
	if !ok {
		return false
	}
	if r.visible == key && res.Surface.Visible() {
		return true
	}
	r.HideVisible()
	res.Surface.Show()
	r.visible = key
	return true
}

// HideVisible hides the visible resource, leaving nothing visible
func (r *Registry) HideVisible() {
	if r.visible.IsZero() {
		return
	}
	if res, ok := r.resources[r.visible]; ok {
		res.Surface.Hide()
	}
	r.visible = domain.SessionKey{}
}

// EnsureVisible shows key when registered and reports true.
// Otherwise it calls resolve(key) and reports false.
func (r *Registry) EnsureVisible(key domain.SessionKey, resolve func(domain.SessionKey)) bool {
	if r.Show(key) {
		return true
	}
	if resolve != nil {
		resolve(key)
	}
	return false
}

// Remove closes and unregisters key. Removing the visible key leaves nothing visible.
func (r *Registry) Remove(key domain.SessionKey) error {
	res, ok := r.resources[key]
	if !ok {
		return nil
	}
	delete(r.resources, key)
	if r.visible == key {
		r.visible = domain.SessionKey{}
	}
	if err := res.Surface.Close(); err != nil {
		return fmt.Errorf("failed to close surface for %s: %w", key, err)
	}
	logging.Logger.Debug("Resource removed", "key", key.String())
	return nil
}

// Rekey moves the resource at oldKey to newKey, keeping its visibility.
// It returns false when oldKey is absent or newKey is taken.
func (r *Registry) Rekey(oldKey, newKey domain.SessionKey) bool {
	res, ok := r.resources[oldKey]
	if !ok || oldKey == newKey {
		return ok
	}
	if _, taken := r.resources[newKey]; taken {
		return false
	}
	delete(r.resources, oldKey)
	res.Key = newKey
	r.resources[newKey] = res
	if r.visible == oldKey {
		r.visible = newKey
	}
	return true
}

// Scale returns the factor applied to surfaces
func (r *Registry) Scale() float64 {
	return r.scale
}

// SetScale applies factor to every surface, visible or not
func (r *Registry) SetScale(factor float64) {
	r.scale = factor
	for _, res := range r.resources {
		res.Surface.SetScale(factor)
	}
}

// Close closes every surface and empties the registry
func (r *Registry) Close() error {
	var errs []error
	for key := range r.resources {
		if err := r.Remove(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
