// Package kernel contains shared value objects used across the domain model.
//
// Currently it holds the UUID value object that identifies orders, tables,
// and menu items. Identifiers are opaque: equality and validity are the only
// operations the domain relies on.
package kernel
