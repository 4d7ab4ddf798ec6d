// Package models defines the core domain models for the rental backend.
//
// # Entities
//
//   - User: staff account with a role (admin, supervisor, cobros)
//   - Property: a building/flat that groups rooms
//   - Room: a rentable unit inside a property
//   - Tenant: a person renting a room
//   - Contract: a lease binding a room and a tenant, with an embedded
//     deposit settlement record
//   - Payment: a monthly money movement tied to a contract, driven by a
//     small status state machine
//   - Expense: a cost charged against a contract, optionally offsetting
//     the deposit
//   - Settings: company-wide configuration singleton
//
// # Design principles
//
//  1. Relationships use ID strings instead of pointers to avoid circular
//     references; joins are resolved at the service layer when needed.
//  2. Timestamps are Unix seconds; billing periods are "YYYY-MM" strings.
//  3. Partial updates are expressed as typed patch structs with pointer
//     fields: a nil field leaves the stored value unchanged.
package models
