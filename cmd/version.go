package main

// Set with -ldflags "-X main.Version=... -X main.Compile=..." at build time.
var (
	Version = "unknown"
	Compile = "unknown"
)
