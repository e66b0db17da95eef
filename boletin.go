// Package boletin ingests the daily publication index of the Boletín
// Oficial del Estado (the Spanish official gazette), resolves each
// referenced article, stores structured metadata and normalized text in
// SQLite, and maintains a local vector index for semantic search over
// the accumulated corpus.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// etree/, gemini/).
package boletin
