// Package mailstore reads stored email records.
//
// A [Query] is an explicit list of [Predicate] values combined with AND,
// ordered by id descending and capped by a limit. [PostgresStore] renders a
// query to parameterised SQL against the email table; [Memory] evaluates it
// in process and backs tests and database-less runs.
package mailstore
