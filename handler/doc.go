// Package handler exposes the schema records over HTTP.
//
// Records mounts one POST endpoint per record kind. Each request body is
// decoded as a JSON object, validated with the schema package and, when valid,
// handed to a Store. Responses use a JSONResponse envelope:
//
//	201 {"data": {"id": "…", "collection": "lead", "record": {…}}}
//	422 {"error": {"code": "validation_error", "message": "…", "details": {"email": ["must be a valid email address"]}}}
//
// Malformed bodies answer 400, wrong content types 415, oversized bodies 413
// and storage failures 500 with a generic message.
package handler
