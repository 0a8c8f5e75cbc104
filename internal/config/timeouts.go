// Package config provides centralized timeout constants for the application.
//
// Collaborator timeouts live on each HTTP client; the dispatcher itself sets
// no deadline, so a slow collaborator surfaces as an ordinary failed call.
package config

import "time"

// HTTP server timeouts
const (
	// ServerRead is the HTTP server read timeout. Intent payloads are small.
	ServerRead = 10 * time.Second

	// ServerWrite must cover the slowest intent chain (CreatePTORequest makes
	// four sequential collaborator calls) plus serialization.
	ServerWrite = 45 * time.Second

	// ServerIdle is the keep-alive idle timeout.
	ServerIdle = 120 * time.Second

	// ServerShutdown is the default graceful shutdown budget.
	ServerShutdown = 30 * time.Second
)

// Collaborator timeouts
const (
	// BambooRequest is the per-request timeout for the HR API.
	BambooRequest = 6 * time.Second

	// SlackRequest is the per-request timeout for Slack user lookups.
	SlackRequest = 10 * time.Second

	// ParkingRequest is the per-request timeout for the parking bot API.
	ParkingRequest = 10 * time.Second

	// NumbersRequest is the per-request timeout for the trivia API.
	NumbersRequest = 6 * time.Second

	// CalendarRequest is the per-request timeout for Google Calendar.
	CalendarRequest = 10 * time.Second
)

// Startup timeouts
const (
	// ContentLoad bounds loading static content from object storage.
	ContentLoad = 30 * time.Second
)
