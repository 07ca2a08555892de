// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DatasetLoader: Reads the static dataset (JSON file or SQLite bundle)
//   - RecordStore: Read access to the loaded organizations
//   - ConfigStore: Application configuration
//   - Clipboard, URLOpener: Desktop integration for record actions
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
