// Package location provides the Location aggregate: a customer site where jobs
// take place, together with the skills it expects from assigned workers.
package location
