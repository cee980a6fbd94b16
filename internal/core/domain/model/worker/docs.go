// Package worker provides the Worker aggregate root for the fieldops domain.
//
// A worker is a person who can be assigned to jobs at customer locations. The
// aggregate owns everything validation needs to know about the person:
//   - the set of skill identifiers the worker possesses
//   - the ordered weekly availability windows (zero windows on a day means the
//     worker is unavailable that day)
//   - an optional maximum weekly hours cap (absent means uncapped)
//   - the worker's leave requests; only approved leave affects scheduling
//
// Key business rules:
//   - Workers must have a valid unique identifier and a non-empty name
//   - Availability windows are half-day-scoped time-of-day ranges with start
//     strictly before end
//   - Leave requests are inclusive date ranges and move pending -> approved or
//     pending -> rejected, never back
//
// The package follows the same constructor-validated aggregate style as the rest
// of the domain model: private fields, factory constructors, and a Restore
// function for reconstruction from persistence.
package worker
