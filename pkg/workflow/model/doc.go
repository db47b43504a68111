// Package model provides the data structures shared between the workflow
// engine and its options. It defines the step descriptors, the per-run
// information handed to observers, and the option interfaces themselves.
package model
