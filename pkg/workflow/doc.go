// Package workflow provides a sequential pipeline of named, retryable steps
// applied in order to a single shared record.
//
// A workflow is built from an ordered list of steps. Each step carries a name
// and a retry budget: it performs up to retries+1 attempts, and every attempt
// that is not short-circuited appends the step name to the record history.
// The record also carries a skip flag. Once any code sets it, every remaining
// attempt of the current step and every later step in the same run performs
// no recorded work; the flag is checked, never cleared.
//
// The engine executes steps strictly in sequence and yields control between
// steps, never mid-step. Mutation of the record is therefore serialised by
// construction: there is never more than one logical thread of control
// touching it, and cancellation between steps leaves the record exactly as
// the last completed step produced it.
//
// Options attached to the engine observe the step chain and every step
// invocation; see the measure, drawer and logging subpackages.
package workflow
