// Package services contains stateless domain services for assignment
// validation.
//
// Four independent read-only checkers examine a proposed worker-to-job
// assignment: skill compatibility against the location's requirements,
// availability against the worker's weekly windows and approved leave,
// overlap against the worker's other active jobs, and workload against the
// worker's weekly hours cap. The AssignmentValidator fans them out
// concurrently and joins their findings into one warning list.
//
// Validation never blocks: the result always allows the assignment to
// proceed, and warnings exist so a scheduler can see and consciously
// override conflicts. All services here are pure; fetching the worker,
// location, and candidate jobs is the caller's responsibility.
package services
