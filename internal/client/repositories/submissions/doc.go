// Package submissions persists the local journal of encounter submissions.
//
// Every attempt made through the clinic service is recorded with its visit,
// outcome and, when the backend answered, the flattened detections per
// attachment. Credentials and access tokens are never written here.
//
// The SQLite implementation works over a dbx.DBTX, so callers can bind it to
// a *sql.DB or to the *sql.Tx handed out by dbx.WithTx.
package submissions
