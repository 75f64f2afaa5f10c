package context

import (
	"context"

	"caregate/internal/domain/entity"
)

const (
	// KeyPrincipal is the key for storing the authenticated principal in context.
	KeyPrincipal ContextKey = "principal"

	// KeyClientIP is the key for storing the client IP in context.
	KeyClientIP ContextKey = "client_ip"

	// KeyDevice is the key for storing the client device identifier in context.
	KeyDevice ContextKey = "device"
)

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal extracts the authenticated principal from context.Context.
// If not found, returns nil.
func GetPrincipal(ctx context.Context) *entity.Principal {
	if principal, ok := ctx.Value(KeyPrincipal).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// WithClientIP returns a new context carrying the client IP.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, KeyClientIP, ip)
}

// GetClientIP extracts the client IP from context.Context.
// If not found, returns empty string.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(KeyClientIP).(string); ok {
		return ip
	}

	return ""
}

// WithDevice returns a new context carrying the client device identifier.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, KeyDevice, device)
}

// GetDevice extracts the client device identifier from context.Context.
// If not found, returns empty string.
func GetDevice(ctx context.Context) string {
	if device, ok := ctx.Value(KeyDevice).(string); ok {
		return device
	}

	return ""
}
