// Package models defines the core domain records for the garage back office.
//
// # Records
//
//   - Customer: a person with one embedded Vehicle and an independent billing snapshot
//   - WorkOrder: a quote that becomes a Pending job and then a Completed invoice
//   - LineItem: one Service (labour) or Part (inventory-backed) row on a work order
//   - InventoryItem, ServiceItem: the parts stock and the service catalog
//   - Worker: payroll and expense tracking for one mechanic
//   - Spending: an operational expense entry
//   - User: a staff login
//
// # Conventions
//
//  1. IDs are UUID strings assigned by the store.
//  2. Timestamps are Unix seconds; 0 means unset.
//  3. Relationships are ID strings, never pointers.
//  4. Derived money fields (labour, parts, total, outstanding) are stored as
//     written at create/edit time and are not recomputed on read.
package models
