// Package job provides the Job aggregate root for the fieldops domain.
//
// A job is a unit of work scheduled at a customer location and carried out by
// one or more assigned workers. The aggregate covers two related shapes:
//
//   - Regular jobs: optionally scheduled, moving through the workflow
//     draft -> planned -> assigned -> in-progress -> submitted ->
//     approved/rejected -> archived.
//   - Recurring templates: jobs flagged recurring with a repetition pattern
//     (daily, weekly, biweekly, monthly). Templates never run themselves; they
//     are expanded into dated instances. An instance always points back at its
//     template via ParentTemplateID and carries the occurrence date that makes
//     the (template, date) pair unique.
//
// Key business rules:
//   - Only templates (recurring, no parent) may generate instances
//   - Instances are created in draft status and are never themselves recurring
//   - Checklist items and worker assignments are copied verbatim from the
//     template at generation time; later template edits do not propagate
//   - The active status subset (planned, assigned, in-progress, submitted) is
//     what overlap and workload validation consider
package job
