// Package pipeline runs document collections end to end: it reads each
// document, assembles its outline, extracts and ranks its sections
// against a persona and task, and merges the ranked results into a
// collection output record. Documents are processed in parallel with a
// bounded worker count, and a failure in one document never aborts its
// siblings.
package pipeline
