// Package requestid assigns every HTTP request an identifier that is echoed in
// the X-Request-ID response header and attached to log records.
package requestid
