// Package sanitizer provides small string transforms and helpers to chain them.
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	clean("  BlogPost ") // "blogpost"
//
//	sanitizer.EmailAddress("Jane <jane@example.com>") // "jane@example.com"
//
// All helpers are pure and safe for concurrent use.
package sanitizer
