package domain

// Package domain contains the core business concepts for the audit PDF service.
// Keep this package free of transport (HTTP) and infrastructure (Redis/PDF
// backend) concerns.
