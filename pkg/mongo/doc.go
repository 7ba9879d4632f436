// Package mongo connects to MongoDB and persists validated schema records.
//
// Configuration comes from the environment (see Config). New retries the
// initial connection, which smooths over a database that starts after the
// application, and Healthcheck adapts a client ping into a readiness check.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	store := mongo.NewStore(db, collections)
//	id, err := store.Insert(ctx, lead) // written to the "lead" collection
//
// Store resolves each record's collection through schema.Collections, so
// overrides such as BlogPost -> "blogs" apply without code changes. Failures
// wrap ErrInsertFailed and ErrFailedToConnectToMongo for use with errors.Is.
package mongo
