// Package config loads the review-site server settings: the token signing
// key, bcrypt cost and version (App), the database DSN and pool sizes
// (Storage), and the listen addresses and request timeout (Server).
//
// Sources are read as environment variables, then command-line flags, then
// an optional JSON file named by CONFIG or -c. They are merged with mergo so
// a later source overrides only the fields it sets. The merged result must
// carry a sign key, a DSN and at least one address.
//
// The main entry point is [GetStructuredConfig].
package config
