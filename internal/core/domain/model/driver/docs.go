// Package driver holds the fleet directory model. Drivers are referenced by
// packages, assignment rules and delivery attempts; the model itself stays
// thin because routing and auth live outside this service.
package driver
