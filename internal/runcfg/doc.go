// Package runcfg defines the launch configuration model: an ordered list of
// fixed hyperparameter flags that, together with a trainer path and caller
// passthrough arguments, forms the exact argument vector handed to the
// external training program. This layer assembles vectors; it never
// validates hyperparameter values or deduplicates flags against passthrough
// arguments — conflict resolution belongs to the trainer's own parser.
package runcfg
