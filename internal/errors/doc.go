// Package errors provides a comprehensive error handling solution for the campaign-api project.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping and JSON response helpers
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("map not found")
//	err := errors.InvalidArgumentf("invalid zone type: %s", zoneType)
//
// Adding metadata:
//
//	err := errors.NotFound("map not found").
//	    WithMeta("campaign_seed", campaignSeed).
//	    WithMeta("zone_id", zoneID)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get map")
//	}
//
// Changing error semantics:
//
//	if err := db.Query(); err != nil {
//	    if isNotFound(err) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "map not found")
//	    }
//	    return errors.Wrap(err, "database error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("zoneId", input.ZoneID, vb)
//	errors.ValidateRange("width", input.Width, 1, 1024, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # HTTP Integration
//
// Writing an error response:
//
//	func (h *Handler) getMap(w http.ResponseWriter, r *http.Request) {
//	    out, err := h.service.LoadMap(r.Context(), input)
//	    if err != nil {
//	        errors.WriteHTTP(r.Context(), w, err)
//	        return
//	    }
//	    ...
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to HTTP responses
//   - Extract user-friendly messages
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - PermissionDenied: Insufficient permissions
//   - Internal: Internal server error
//   - Unavailable: Service temporarily unavailable
//   - Unauthenticated: Authentication required
//   - ResourceExhausted: Rate limit or quota exceeded
//   - FailedPrecondition: Operation requirements not met
//   - Aborted: Operation aborted
//   - OutOfRange: Value out of valid range
//   - Unimplemented: Feature not implemented
//   - DataLoss: Unrecoverable data loss
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
