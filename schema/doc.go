// Package schema declares the records stored in the document database and
// validates raw input against them.
//
// Each record kind (User, Product, Lead) is a flat Go struct whose json and
// bson tags carry the stored field names. A record is built only through its
// Validate function, which decodes a Raw map (as produced by encoding/json),
// applies defaults, checks every field constraint and returns either the
// typed record or a validator.ValidationErrors value listing every violation.
//
//	lead, err := schema.ValidateLead(raw)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		// errs.Details() -> {"email": ["must be a valid email address"]}
//	}
//
// # Collections
//
// Every record declares its collection through Model. Collections resolves
// the final name, letting deployments override it per model name (for example
// BlogPost -> "blogs") without touching the declarations. Lower-casing the
// model name is only the fallback for models that declare no collection.
//
// Validation is pure and safe for concurrent use.
package schema
