// Package domain contains the core model for the intersection simulator.
//
// The domain is presentation- and persistence-agnostic: it does not depend on
// terminal rendering, YAML parsing, or the goroutines that drive the
// simulation. The sim engine mutates these types behind its registry;
// infra/adapters and the view map into/from them.
package domain
