// Package innergy provides a minimal client for the Innergy work-order API.
//
// The client performs exactly one kind of call: an authenticated GET of the
// projectWorkOrders endpoint. There are no retries, no backoff, and no
// pagination — a single request, a single response. Transport failures are
// classified into the model.RunError taxonomy (status / network / timeout /
// parse) so the entrypoint can render them uniformly.
//
// Work orders are kept opaque (json.RawMessage) so the response survives
// round-tripping to output without schema loss; callers that need typed
// access decode via model.DecodeWorkOrders.
package innergy
