// Package result builds and renders the single JSON object the fetch
// entrypoint ever prints: the ResultEnvelope. Exactly one of two shapes is
// emitted per run — a success envelope carrying the work orders and their
// count, or a failure envelope carrying one human-readable message derived
// from the error taxonomy.
package result
