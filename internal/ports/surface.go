package ports

import "github.com/renato0307/muxdeck/internal/domain"

// Surface displays one terminal. Surfaces are created hidden.
type Surface interface {
	Address() domain.TerminalAddress
	Close() error
	Hide()
	Scale() float64
	SetScale(factor float64)
	Show()
	Visible() bool
}

// SurfaceFactory creates a surface for a resolved terminal address
type SurfaceFactory interface {
	NewSurface(key domain.SessionKey, addr domain.TerminalAddress) (Surface, error)
}
